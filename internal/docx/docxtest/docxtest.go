// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docxtest writes minimal .docx files for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"os"
	"testing"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentHead = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`

const documentTail = `<w:sectPr/></w:body></w:document>`

// Write creates a .docx at path whose body holds one paragraph per entry.
// An empty string produces an empty paragraph.
func Write(t testing.TB, path string, paragraphs ...string) {
	t.Helper()
	WriteBody(t, path, BodyXML(paragraphs...))
}

// WriteBody creates a .docx at path with body as the raw inner XML of w:body.
func WriteBody(t testing.TB, path, body string) {
	t.Helper()
	WriteParts(t, path, map[string]string{
		"[Content_Types].xml": contentTypes,
		"_rels/.rels":         rootRels,
		"word/document.xml":   documentHead + body + documentTail,
	})
}

// WriteParts creates a zip archive at path with the given part contents.
func WriteParts(t testing.TB, path string, parts map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		f, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating part %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("writing part %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// BodyXML renders plain paragraphs as WordprocessingML.
func BodyXML(paragraphs ...string) string {
	var b bytes.Buffer
	for _, p := range paragraphs {
		if p == "" {
			b.WriteString("<w:p/>")
			continue
		}
		b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		_ = xml.EscapeText(&b, []byte(p))
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	return b.String()
}
