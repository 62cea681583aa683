// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements batch conversion of .docx documents into
// plain-text files with pluggable document readers.
//
// A run is strictly sequential: each document is read, joined, and written
// before the next one is opened. Failures of a single document are recorded
// in its ConversionResult and never stop the batch.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docx2txt/pkg/types"
)

// DocumentReader yields the paragraph text of a document in document order.
// The native reader (internal/docx) and the pandoc backend implement it.
type DocumentReader interface {
	ReadParagraphs(path string) ([]string, error)
}

// Summary holds the outcome of a batch conversion run.
type Summary struct {
	// Seen counts the input files that matched the document extension.
	Seen      int
	Converted int
	Failed    int

	// Results lists per-file outcomes in processing order.
	Results []types.ConversionResult
}

// HasFailures reports whether any document failed conversion.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

func (s *Summary) add(r types.ConversionResult) {
	s.Seen++
	if r.OK() {
		s.Converted++
	} else {
		s.Failed++
	}
	s.Results = append(s.Results, r)
}

// EnsureOutputDir creates dir and any missing parents. created is true only
// when dir did not exist before the call.
func EnsureOutputDir(dir string) (created bool, err error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("output path %s is not a directory", dir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking output directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return true, nil
}

// ListCandidates returns the names of the regular entries of dir that end
// in the document extension. The match is case-sensitive and
// non-recursive.
func ListCandidates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing input directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), types.DocumentExt) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// TextName derives the output filename for a document filename.
func TextName(name string) string {
	return strings.TrimSuffix(name, types.DocumentExt) + types.TextExt
}

// ConvertOne reads inputDir/name, joins its paragraphs with "\n", and writes
// the text to outputDir, overwriting any existing file. It never returns an
// error: read and write failures, and panics raised by the reader, are
// reported through the result.
func ConvertOne(r DocumentReader, inputDir, outputDir, name string) (res types.ConversionResult) {
	res = types.ConversionResult{
		Source: name,
		Output: TextName(name),
		Status: types.ConversionFailed,
	}
	defer func() {
		if p := recover(); p != nil {
			res.Status = types.ConversionFailed
			res.Err = fmt.Errorf("reading %s: panic: %v", name, p)
		}
	}()

	paras, err := r.ReadParagraphs(filepath.Join(inputDir, name))
	if err != nil {
		res.Err = err
		return res
	}

	text := strings.Join(paras, "\n")
	if err := os.WriteFile(filepath.Join(outputDir, res.Output), []byte(text), 0o644); err != nil {
		res.Err = fmt.Errorf("writing %s: %w", res.Output, err)
		return res
	}

	res.Status = types.ConversionDone
	return res
}

// Run converts every candidate document of req.InputDir into req.OutputDir,
// printing progress and a final status line to w. The returned error is
// non-nil only when the output directory cannot be prepared or the input
// directory cannot be listed; per-document failures are in the Summary.
func Run(r DocumentReader, req types.ConversionRequest, w io.Writer) (Summary, error) {
	var sum Summary

	created, err := EnsureOutputDir(req.OutputDir)
	if err != nil {
		return sum, err
	}
	if created {
		fmt.Fprintf(w, "Created output directory: %s\n", req.OutputDir)
	}

	fmt.Fprintf(w, "Searching for %s files in: %s\n", types.DocumentExt, req.InputDir)

	names, err := ListCandidates(req.InputDir)
	if err != nil {
		return sum, err
	}

	for _, name := range names {
		res := ConvertOne(r, req.InputDir, req.OutputDir, name)
		sum.add(res)
		if res.OK() {
			fmt.Fprintf(w, "converted: '%s' -> '%s'\n", res.Source, res.Output)
		} else {
			fmt.Fprintf(w, "failed:    '%s' (%v)\n", res.Source, res.Err)
		}
	}

	printSummary(w, req, sum)
	return sum, nil
}

func printSummary(w io.Writer, req types.ConversionRequest, sum Summary) {
	switch {
	case sum.Seen == 0:
		fmt.Fprintf(w, "No %s files found in '%s'.\n", types.DocumentExt, req.InputDir)
	case sum.Converted == 0:
		fmt.Fprintf(w, "\nNo %s files converted in '%s': %d failed.\n",
			types.DocumentExt, req.InputDir, sum.Failed)
	default:
		fmt.Fprintf(w, "\nConversion complete: %d converted, %d failed.\n", sum.Converted, sum.Failed)
		fmt.Fprintf(w, "Text files are in: %s\n", req.OutputDir)
	}
}
