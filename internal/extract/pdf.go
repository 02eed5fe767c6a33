package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// PDF extracts the text of every page with MuPDF, one page per block.
func PDF(ctx context.Context, content []byte) (string, error) {
	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("pdf page %d: %w", i+1, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}
