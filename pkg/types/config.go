// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for docx2txt: the conversion
// request, per-document results, and the run configuration.
package types

import "fmt"

// ConversionBackend identifies the tool that reads paragraphs from a document.
type ConversionBackend string

const (
	BackendNative ConversionBackend = "native"
	BackendPandoc ConversionBackend = "pandoc"
)

// Valid reports whether b names a known backend.
func (b ConversionBackend) Valid() bool {
	switch b {
	case BackendNative, BackendPandoc:
		return true
	}
	return false
}

const (
	// DefaultInputDir is used when no input directory is configured.
	DefaultInputDir = "."
	// DefaultLogLevel is the diagnostics level when none is configured.
	DefaultLogLevel = "info"
)

// ConversionConfig holds the resolved settings for one invocation.
type ConversionConfig struct {
	// InputDir is the directory scanned (non-recursively) for .docx files.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir receives the .txt files. Defaults to InputDir.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Backend selects the document reader: native or pandoc.
	Backend ConversionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// ReportPath, when set, receives a YAML report of the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty" mapstructure:"report"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Validate fills defaults and rejects unusable settings.
func (c *ConversionConfig) Validate() error {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = c.InputDir
	}
	if c.Backend == "" {
		c.Backend = BackendNative
	}
	if !c.Backend.Valid() {
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendNative, BackendPandoc)
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return nil
}

// Request returns the directory pair for the run.
func (c ConversionConfig) Request() ConversionRequest {
	return ConversionRequest{InputDir: c.InputDir, OutputDir: c.OutputDir}
}
