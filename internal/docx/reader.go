// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx reads the paragraph text of Word (.docx) documents.
//
// A .docx file is a zip archive; the main document part (normally
// word/document.xml) holds WordprocessingML. Reader streams that part and
// returns the text of each paragraph that sits directly in the document
// body, in document order. Paragraphs nested in tables or content controls
// are not part of that sequence.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

const (
	nsMain       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsMainStrict = "http://purl.oclc.org/ooxml/wordprocessingml/main"

	rootRels        = "_rels/.rels"
	defaultMainPart = "word/document.xml"
	relTypeSuffix   = "/officeDocument"
)

var (
	// ErrNoDocumentPart is returned when the archive has no main document part.
	ErrNoDocumentPart = errors.New("main document part not found")
	// ErrNoBody is returned when the main part has no w:body element.
	ErrNoBody = errors.New("document has no body")
)

// ParseError reports a document that could not be opened or parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Reader extracts paragraph text from .docx files on disk.
type Reader struct{}

// NewReader returns a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadParagraphs opens the document at path and returns one string per body
// paragraph. Empty paragraphs yield empty strings. Any failure is returned
// as a *ParseError.
func (r *Reader) ReadParagraphs(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer zr.Close()

	paras, err := ReadArchive(&zr.Reader)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return paras, nil
}

// ReadArchive returns the body paragraphs of an already opened .docx archive.
func ReadArchive(zr *zip.Reader) ([]string, error) {
	name := mainPartName(zr)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		defer rc.Close()
		return parseBody(rc)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoDocumentPart, name)
}

// relationships mirrors the package relationship part (_rels/.rels).
type relationships struct {
	Items []struct {
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// mainPartName resolves the main document part from the package
// relationships, falling back to word/document.xml.
func mainPartName(zr *zip.Reader) string {
	for _, f := range zr.File {
		if f.Name != rootRels {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return defaultMainPart
		}
		defer rc.Close()

		var rels relationships
		if err := xml.NewDecoder(rc).Decode(&rels); err != nil {
			return defaultMainPart
		}
		for _, rel := range rels.Items {
			if strings.HasSuffix(rel.Type, relTypeSuffix) && rel.Target != "" {
				return path.Clean(strings.TrimPrefix(rel.Target, "/"))
			}
		}
	}
	return defaultMainPart
}

// parseBody streams WordprocessingML and collects body paragraph text.
// stack holds the local names of the open elements; elements outside the
// WordprocessingML namespace are recorded as "".
func parseBody(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		stack   []string
		paras   []string
		cur     strings.Builder
		sawBody bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding document xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := localName(t.Name)
			if inRun(stack) {
				cur.WriteString(runMarkup(name, t.Attr))
			}
			stack = append(stack, name)
			if isBody(stack) {
				sawBody = true
			}
			if isBodyParagraph(stack) {
				cur.Reset()
			}
		case xml.EndElement:
			if isBodyParagraph(stack) {
				paras = append(paras, cur.String())
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if n := len(stack); n > 0 && stack[n-1] == "t" && inRun(stack[:n-1]) {
				cur.Write(t)
			}
		}
	}

	if !sawBody {
		return nil, ErrNoBody
	}
	if paras == nil {
		paras = []string{}
	}
	return paras, nil
}

func localName(n xml.Name) string {
	if n.Space != nsMain && n.Space != nsMainStrict {
		return ""
	}
	return n.Local
}

func isBody(stack []string) bool {
	return len(stack) == 2 && stack[0] == "document" && stack[1] == "body"
}

func isBodyParagraph(stack []string) bool {
	return len(stack) == 3 && isBody(stack[:2]) && stack[2] == "p"
}

// inRun reports whether stack ends at a run that belongs to a body
// paragraph, either directly or through a hyperlink.
func inRun(stack []string) bool {
	if len(stack) < 4 || !isBodyParagraph(stack[:3]) {
		return false
	}
	switch rest := stack[3:]; len(rest) {
	case 1:
		return rest[0] == "r"
	case 2:
		return rest[0] == "hyperlink" && rest[1] == "r"
	}
	return false
}

// runMarkup returns the text contributed by a non-text run child.
func runMarkup(name string, attrs []xml.Attr) string {
	switch name {
	case "tab", "ptab":
		return "\t"
	case "cr":
		return "\n"
	case "noBreakHyphen":
		return "-"
	case "br":
		for _, a := range attrs {
			if a.Name.Local == "type" && a.Value != "textWrapping" {
				return ""
			}
		}
		return "\n"
	}
	return ""
}
