package extract

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

var cellFlattener = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// CSV renders the rows as an aligned text table, header first.
// Rows may have differing field counts.
func CSV(_ context.Context, content []byte) (string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse csv: %w", err)
		}
		for i := range rec {
			rec[i] = cellFlattener.Replace(rec[i])
		}
		fmt.Fprintln(tw, strings.Join(rec, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return "", err
	}
	return strings.ToValidUTF8(buf.String(), "�"), nil
}
