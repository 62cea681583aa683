// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of converting one document.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

const (
	// DocumentExt is the literal, case-sensitive suffix of convertible files.
	DocumentExt = ".docx"
	// TextExt is the suffix of the generated plain-text files.
	TextExt = ".txt"
)

// ConversionRequest names the directories for one run. InputDir and
// OutputDir may be the same directory.
type ConversionRequest struct {
	InputDir  string `json:"input_dir" yaml:"input_dir"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// ConversionResult is the outcome for a single source document.
type ConversionResult struct {
	// Source is the document filename inside the input directory.
	Source string `json:"source" yaml:"source"`

	// Output is the text filename inside the output directory.
	Output string `json:"output" yaml:"output"`

	Status ConversionStatus `json:"status" yaml:"status"`

	// Err describes the failure when Status is ConversionFailed.
	Err error `json:"-" yaml:"-"`
}

// OK reports whether the document was converted.
func (r ConversionResult) OK() bool {
	return r.Status == ConversionDone
}
