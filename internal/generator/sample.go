package generator

import (
	"unicode/utf8"

	"github.com/tmc/langchaingo/textsplitter"
)

// Sample returns at most max characters of text, cut on a paragraph,
// line or word boundary when one exists.
func Sample(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}

	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(max),
		textsplitter.WithChunkOverlap(0),
	)
	splitter.LenFunc = utf8.RuneCountInString

	chunks, err := splitter.SplitText(text)
	if err == nil && len(chunks) > 0 && chunks[0] != "" && utf8.RuneCountInString(chunks[0]) <= max {
		return chunks[0]
	}
	return hardCut(text, max)
}

func hardCut(text string, max int) string {
	n := 0
	for i := range text {
		if n == max {
			return text[:i]
		}
		n++
	}
	return text
}
