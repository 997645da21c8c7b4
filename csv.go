package rcol

import (
	"encoding/csv"
	"io"
)

// writeCSV emits the header row (when present) followed by every data row,
// with standard quoting. The TSV format reuses this with a tab delimiter.
func writeCSV(w io.Writer, t *Table, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim
	if len(t.Headers) > 0 {
		if err := cw.Write(t.Headers); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
