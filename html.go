package rcol

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, t *Table) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if len(t.Headers) > 0 {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, h := range t.Headers {
			if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", html.EscapeString(h)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, val := range row {
			if _, err := fmt.Fprintf(w, "      <td>%s</td>\n", html.EscapeString(val)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}
