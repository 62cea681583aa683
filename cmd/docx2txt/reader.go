package main

import (
	"github.com/pdiddy/docx2txt/internal/container"
	"github.com/pdiddy/docx2txt/internal/convert"
	"github.com/pdiddy/docx2txt/internal/docx"
	"github.com/pdiddy/docx2txt/internal/logger"
	"github.com/pdiddy/docx2txt/pkg/types"
)

// detectRuntime is swapped in tests.
var detectRuntime = container.DetectRuntime

// newReader returns the document reader for backend.
func newReader(backend types.ConversionBackend, log logger.Logger) (convert.DocumentReader, error) {
	switch backend {
	case types.BackendPandoc:
		rt, err := detectRuntime()
		if err != nil {
			return nil, err
		}
		r, err := convert.NewPandocReader(rt)
		if err != nil {
			return nil, err
		}
		log.Info("using pandoc backend via %s", rt.Name())
		return &loggingReader{next: r, log: log}, nil
	default:
		log.Debug("using native backend")
		return &loggingReader{next: docx.NewReader(), log: log}, nil
	}
}

// loggingReader reports paragraph counts at debug level.
type loggingReader struct {
	next convert.DocumentReader
	log  logger.Logger
}

func (l *loggingReader) ReadParagraphs(path string) ([]string, error) {
	paras, err := l.next.ReadParagraphs(path)
	if err != nil {
		l.log.Debug("reading %s: %v", path, err)
		return nil, err
	}
	l.log.Debug("read %d paragraph(s) from %s", len(paras), path)
	return paras, nil
}
