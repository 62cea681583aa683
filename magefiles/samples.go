//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
)

const samplesDir = "testdata/samples"

// sampleDocs maps a file name to its paragraphs. An empty string is an
// empty paragraph.
var sampleDocs = map[string][]string{
	"report.docx":  {"Quarterly report", "", "Revenue grew in every region.", "Costs were flat."},
	"minutes.docx": {"Meeting minutes", "Attendees: Ana, Luis, Marta", "", "Decisions:", "Ship the converter."},
	"acentos.docx": {"Comunicación", "Año académico: niño, señal, canción."},
}

// Samples writes sample .docx files into testdata/samples, plus a text file
// that the converter must ignore.
func Samples() error {
	if err := os.MkdirAll(samplesDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", samplesDir, err)
	}
	for name, paras := range sampleDocs {
		doc, err := godocx.NewDocument()
		if err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
		for _, p := range paras {
			doc.AddParagraph(p)
		}
		path := filepath.Join(samplesDir, name)
		if err := doc.SaveTo(path); err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	return os.WriteFile(filepath.Join(samplesDir, "README.txt"), []byte("not a document\n"), 0o644)
}
