package rcol

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type boxChars struct {
	horizontal, vertical                       string
	topLeft, topRight, bottomLeft, bottomRight string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var boxDrawing = boxChars{
	horizontal: "─", vertical: "│",
	topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
	topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
	cross: "┼",
}

type textRenderer struct {
	w       io.Writer
	widths  []int
	cfg     Config
	padding string

	drawBorders bool
	drawCS      bool
	drawTS      bool
	drawFS      bool
}

// writeText renders t as an aligned text grid. Output order: top border,
// numbering row with its trailing rule, header row with the title rule,
// data rows with the footer rule before the last one, bottom border. Each
// piece appears only when its toggle asks for it.
func writeText(w io.Writer, t *Table, cfg Config) error {
	if cfg.Padding < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPadding, cfg.Padding)
	}
	r := &textRenderer{
		w:       w,
		widths:  columnWidths(t, cfg),
		cfg:     cfg,
		padding: strings.Repeat(" ", cfg.Padding),

		drawBorders: cfg.Border == BorderFull,
		drawCS:      cfg.Border != BorderNone,
		// An explicit header always gets a rule under it.
		drawTS: cfg.TitleSep || cfg.Header != "",
		drawFS: cfg.FooterSep,
	}

	if cfg.Numbering {
		if err := r.numberRow(t.Selected); err != nil {
			return err
		}
	} else if r.drawBorders {
		if err := r.rule(boxDrawing.topLeft, boxDrawing.topRight, boxDrawing.topTee); err != nil {
			return err
		}
	}

	if len(t.Headers) > 0 {
		if err := r.headerRow(t.Headers); err != nil {
			return err
		}
	}

	if err := r.dataRows(t.Rows); err != nil {
		return err
	}

	if r.drawBorders {
		return r.rule(boxDrawing.bottomLeft, boxDrawing.bottomRight, boxDrawing.bottomTee)
	}
	return nil
}

// columnWidths returns the display width of each output column: the widest
// of the header cell, every data cell, and the printed column number when
// numbering is on. Rows wider than anything seen so far grow the slice,
// back-filled with zero.
func columnWidths(t *Table, cfg Config) []int {
	widths := make([]int, 0, len(t.Headers))
	for _, h := range t.Headers {
		widths = append(widths, VisibleWidth(h))
	}
	for _, row := range t.Rows {
		if len(row) > len(widths) {
			grown := make([]int, len(row))
			copy(grown, widths)
			widths = grown
		}
		for i, cell := range row {
			if w := VisibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	if cfg.Numbering {
		for i := range widths {
			if w := VisibleWidth(columnNumber(t.Selected, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// columnNumber is the 1-based number printed for output column i: the
// original source position when known, the output position otherwise.
func columnNumber(selected []int, i int) string {
	if i < len(selected) {
		return strconv.Itoa(selected[i] + 1)
	}
	return strconv.Itoa(i + 1)
}

// rule draws a horizontal line across the table. The edge and join
// characters apply only in full-border mode; with column separators alone
// the joins use the given string, and with no separators at all the gap
// between columns is filled with padding-width horizontals.
func (r *textRenderer) rule(left, right, join string) error {
	var sb strings.Builder
	if r.drawBorders {
		sb.WriteString(left)
	}
	for i, w := range r.widths {
		if i > 0 {
			if r.drawBorders || r.drawCS {
				sb.WriteString(join)
			} else {
				sb.WriteString(strings.Repeat(boxDrawing.horizontal, r.cfg.Padding))
			}
		}
		sb.WriteString(strings.Repeat(boxDrawing.horizontal, w+2*r.cfg.Padding))
	}
	if r.drawBorders {
		sb.WriteString(right)
	}
	_, err := fmt.Fprintln(r.w, sb.String())
	return err
}

// midRule is the rule used inside the table body: after the numbering row,
// under the header, and before the footer row.
func (r *textRenderer) midRule() error {
	if r.drawBorders {
		return r.rule(boxDrawing.leftTee, boxDrawing.rightTee, boxDrawing.cross)
	}
	return r.rule(boxDrawing.horizontal, boxDrawing.horizontal, boxDrawing.horizontal)
}

// cellSep is the string between adjacent cells on a content line.
func (r *textRenderer) cellSep() string {
	switch {
	case r.drawBorders:
		return boxDrawing.vertical
	case r.drawCS:
		return r.cfg.ColSep
	default:
		return r.padding
	}
}

func (r *textRenderer) numberRow(selected []int) error {
	if r.drawBorders {
		if err := r.rule(boxDrawing.topLeft, boxDrawing.topRight, boxDrawing.topTee); err != nil {
			return err
		}
	}
	var sb strings.Builder
	if r.drawBorders {
		sb.WriteString(boxDrawing.vertical)
	}
	for i, w := range r.widths {
		if i > 0 {
			sb.WriteString(r.cellSep())
		}
		num := columnNumber(selected, i)
		sb.WriteString(r.padding)
		sb.WriteString(num)
		if pad := w - VisibleWidth(num); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(r.padding)
	}
	if r.drawBorders {
		sb.WriteString(boxDrawing.vertical)
	}
	if _, err := fmt.Fprintln(r.w, sb.String()); err != nil {
		return err
	}
	if r.drawBorders || r.drawTS {
		return r.midRule()
	}
	return nil
}

func (r *textRenderer) headerRow(headers []string) error {
	var sb strings.Builder
	if r.drawBorders {
		sb.WriteString(boxDrawing.vertical)
	}
	for i, h := range headers {
		if i > 0 {
			sb.WriteString(r.cellSep())
		}
		// A leading "-" forces right alignment and is not displayed.
		alignRight := strings.HasPrefix(h, "-")
		content := h
		if alignRight {
			content = h[1:]
		}
		if r.cfg.NoFormat {
			sb.WriteString(content)
			continue
		}
		sb.WriteString(r.padding)
		sb.WriteString(padCell(content, r.widths[i], alignRight))
		sb.WriteString(r.padding)
	}
	if r.drawBorders {
		sb.WriteString(boxDrawing.vertical)
	}
	if _, err := fmt.Fprintln(r.w, sb.String()); err != nil {
		return err
	}
	if r.drawTS {
		return r.midRule()
	}
	return nil
}

func (r *textRenderer) dataRows(rows [][]string) error {
	for rowIdx, row := range rows {
		if r.drawFS && rowIdx > 0 && rowIdx == len(rows)-1 {
			if err := r.midRule(); err != nil {
				return err
			}
		}
		var sb strings.Builder
		if r.drawBorders {
			sb.WriteString(boxDrawing.vertical)
		}
		for i, val := range row {
			if i > 0 {
				sb.WriteString(r.cellSep())
			}
			if r.cfg.NoFormat {
				sb.WriteString(val)
				continue
			}
			width := VisibleWidth(val)
			if i < len(r.widths) {
				width = r.widths[i]
			}
			sb.WriteString(r.padding)
			sb.WriteString(padCell(val, width, isNumeric(val) && !r.cfg.NoNumeric))
			sb.WriteString(r.padding)
		}
		if r.drawBorders {
			sb.WriteString(boxDrawing.vertical)
		}
		if _, err := fmt.Fprintln(r.w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// padCell pads s with spaces to the given display width, on the left when
// right-aligned.
func padCell(s string, width int, right bool) string {
	pad := width - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
