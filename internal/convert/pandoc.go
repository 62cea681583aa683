// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/docx2txt/internal/container"
)

const imagePandoc = "pandoc/core:latest"

var pandocArgs = []string{"--from", "docx", "--to", "plain", "--wrap", "none"}

// PandocReader reads documents by piping them through the pandoc container
// image. Pandoc separates paragraphs with blank lines and drops empty
// paragraphs, so the result never contains empty strings.
type PandocReader struct {
	runtime container.Runtime
}

// NewPandocReader creates a reader that uses the given container runtime.
// It verifies that the pandoc image exists locally before returning.
func NewPandocReader(rt container.Runtime) (*PandocReader, error) {
	if err := rt.ImageExists(imagePandoc); err != nil {
		return nil, fmt.Errorf("pandoc image not available in %s: %w", rt.Name(), err)
	}
	return &PandocReader{runtime: rt}, nil
}

// ReadParagraphs pipes the document at path through pandoc and splits the
// plain-text output into paragraphs.
func (p *PandocReader) ReadParagraphs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document %s: %w", path, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := p.runtime.Run(imagePandoc, pandocArgs, f, &out); err != nil {
		return nil, fmt.Errorf("converting %s with pandoc: %w", path, err)
	}
	return splitPlain(out.String()), nil
}

func splitPlain(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.Trim(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n\n")
}
