// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docx2txt/pkg/types"
)

// Report is the YAML record of one run.
type Report struct {
	InputDir    string        `yaml:"input_dir"`
	OutputDir   string        `yaml:"output_dir"`
	Backend     string        `yaml:"backend"`
	GeneratedAt string        `yaml:"generated_at"`
	Seen        int           `yaml:"seen"`
	Converted   int           `yaml:"converted"`
	Failed      int           `yaml:"failed"`
	Files       []ReportEntry `yaml:"files"`
}

// ReportEntry is the outcome of one document.
type ReportEntry struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Status string `yaml:"status"`
	Error  string `yaml:"error,omitempty"`
}

// NewReport builds a Report from a finished run.
func NewReport(req types.ConversionRequest, backend types.ConversionBackend, sum Summary, now time.Time) Report {
	rep := Report{
		InputDir:    req.InputDir,
		OutputDir:   req.OutputDir,
		Backend:     string(backend),
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Seen:        sum.Seen,
		Converted:   sum.Converted,
		Failed:      sum.Failed,
		Files:       make([]ReportEntry, 0, len(sum.Results)),
	}
	for _, r := range sum.Results {
		e := ReportEntry{Source: r.Source, Output: r.Output, Status: string(r.Status)}
		if r.Err != nil {
			e.Error = r.Err.Error()
		}
		rep.Files = append(rep.Files, e)
	}
	return rep
}

// WriteReport marshals rep as YAML to path, creating parent directories.
func WriteReport(path string, rep Report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
