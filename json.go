package rcol

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeJSON emits an array of objects keyed by header name, one per row.
// In title-column mode it emits a single object keyed by each row's first
// field instead, mapping to the remaining fields. Without headers the rows
// come out as an array of string arrays. Escape sequences are stripped
// from everything so colored input stays machine-readable.
func writeJSON(w io.Writer, t *Table, titleColumn bool) error {
	data, err := json.MarshalIndent(tableValue(t, titleColumn), "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

// tableValue builds the plain-map structure the JSON encoder marshals.
// The YAML path builds yaml.Node values instead, to control key order.
func tableValue(t *Table, titleColumn bool) any {
	if len(t.Headers) == 0 {
		rows := make([][]string, len(t.Rows))
		for i, row := range t.Rows {
			stripped := make([]string, len(row))
			for j, val := range row {
				stripped[j] = stripEscape(val)
			}
			rows[i] = stripped
		}
		return rows
	}
	if titleColumn {
		out := make(map[string]map[string]string, len(t.Rows))
		for _, row := range t.Rows {
			if len(row) == 0 {
				continue
			}
			obj := make(map[string]string, len(row))
			for i, val := range row[1:] {
				if i+1 < len(t.Headers) {
					obj[stripEscape(t.Headers[i+1])] = stripEscape(val)
				}
			}
			out[stripEscape(row[0])] = obj
		}
		return out
	}
	out := make([]map[string]string, len(t.Rows))
	for i, row := range t.Rows {
		obj := make(map[string]string, len(row))
		for j, val := range row {
			if j < len(t.Headers) {
				obj[stripEscape(t.Headers[j])] = stripEscape(val)
			}
		}
		out[i] = obj
	}
	return out
}
