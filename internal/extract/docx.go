package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBody = "word/document.xml"

// DOCX reads the main document part of an Office Open XML file and returns
// its paragraphs separated by newlines.
func DOCX(_ context.Context, content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == docxBody {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("open docx: %s missing", docxBody)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer rc.Close()

	return docxParagraphs(rc)
}

// docxParagraphs walks the WordprocessingML token stream. Only w:t runs carry
// text; w:tab and w:br map to their whitespace and each w:p ends a line.
func docxParagraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var (
		out    []string
		para   strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse docx: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				para.WriteByte('\t')
			case "br", "cr":
				para.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				out = append(out, para.String())
				para.Reset()
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}
	if para.Len() > 0 {
		out = append(out, para.String())
	}
	return strings.Join(out, "\n"), nil
}
