package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestRegistry_Extract(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	tests := []struct {
		name    string
		docType string
		content []byte
		want    string
		wantErr error
	}{
		{
			name:    "txt",
			docType: "txt",
			content: []byte("A. B. C."),
			want:    "A. B. C.",
		},
		{
			name:    "txt with invalid utf8",
			docType: "TXT",
			content: []byte("ok\xffok"),
			want:    "ok�ok",
		},
		{
			name:    "docx paragraphs",
			docType: "docx",
			content: buildDocx(t, `<w:p><w:r><w:t>Hello</w:t></w:r><w:r><w:tab/><w:t>world</w:t></w:r></w:p><w:p><w:r><w:t>Second</w:t></w:r></w:p>`),
			want:    "Hello\tworld\nSecond",
		},
		{
			name:    "unsupported",
			docType: "pptx",
			content: []byte("x"),
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Extract(ctx, tt.docType, tt.content)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCSV(t *testing.T) {
	got, err := CSV(context.Background(), []byte("name,score\nalice,10\nbob,7,extra\n"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "name"))
	assert.Contains(t, lines[0], "score")
	assert.Contains(t, lines[2], "extra")
	// columns line up
	assert.Equal(t, strings.Index(lines[0], "score"), strings.Index(lines[1], "10"))
}

func TestDOCX_NotAZip(t *testing.T) {
	_, err := DOCX(context.Background(), []byte("plain"))
	assert.Error(t, err)
}

func TestDOCX_MissingBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = DOCX(context.Background(), buf.Bytes())
	assert.ErrorContains(t, err, "word/document.xml missing")
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register("md", ExtractorFunc(func(_ context.Context, b []byte) (string, error) {
		return strings.ToUpper(string(b)), nil
	}))

	got, err := r.Extract(context.Background(), "md", []byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, "HI", got)
}
