package rcol

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidColumnSpec = errors.New("invalid column spec")
	ErrInvalidFilter     = errors.New("invalid filter regex")
	ErrInvalidPadding    = errors.New("invalid padding width")
)

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	YAML     Format = "yaml"
	HTML     Format = "html"
	Markdown Format = "markdown"
)

var formats = []Format{Text, CSV, TSV, JSON, YAML, HTML, Markdown}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// BorderMode controls how cells are separated in text output.
type BorderMode int

const (
	// BorderNone separates cells with padding spaces only.
	BorderNone BorderMode = iota
	// BorderColumns draws the column separator string between cells.
	BorderColumns
	// BorderFull draws a box around the whole table. It implies column
	// separators.
	BorderFull
)

// Config holds every knob of the pipeline and renderer. A Config is built
// once per run and threaded through each stage unchanged.
type Config struct {
	// Separator is the literal field delimiter. Ignored when Collapse is
	// set.
	Separator string
	// Collapse splits fields on runs of one or more whitespace
	// characters instead of Separator.
	Collapse bool
	// Filter is an optional regular expression; input lines that do not
	// match are dropped before header resolution.
	Filter string
	// Header is an explicit header line, tokenized with the same
	// separator rules as data. Empty means none.
	Header string
	// NoHeadline treats the first input line as data instead of
	// promoting it to the header row.
	NoHeadline bool
	// RemoveHeader discards the first input line outright. The line
	// after it may still be promoted to header.
	RemoveHeader bool
	// Columns selects and orders output columns: 1-based indices or
	// start:end ranges, reversed ranges allowed, repeats allowed. Empty
	// selects every column in input order.
	Columns []string
	// SortColumn sorts rows by the given 1-based output column. Zero
	// means no sort; out of range is a no-op.
	SortColumn int
	// GroupColumn collapses consecutive duplicate values in the given
	// 1-based output column. Zero means no grouping; out of range is a
	// no-op.
	GroupColumn int
	// KeepGroupValues leaves repeated group values visible instead of
	// blanking them.
	KeepGroupValues bool

	// Padding is the number of spaces on each side of a cell. Negative
	// values are rejected when rendering text.
	Padding int
	// ColSep is the string drawn between cells in BorderColumns mode.
	ColSep string
	// Border selects the cell separation style.
	Border BorderMode
	// TitleSep draws a horizontal rule between the header and the data.
	// An explicit Header implies it.
	TitleSep bool
	// FooterSep draws a horizontal rule before the last data row.
	FooterSep bool
	// Numbering prepends a row of 1-based source column numbers.
	Numbering bool
	// NoFormat emits cells at their natural width, without alignment
	// padding.
	NoFormat bool
	// NoNumeric disables automatic right-alignment of numeric values.
	NoNumeric bool
	// TitleColumn keys JSON and YAML objects by each row's first field
	// instead of emitting an array of rows.
	TitleColumn bool
}

// DefaultConfig returns a Config with the standard defaults: single-space
// separator, one space of padding, and "│" as the column separator.
func DefaultConfig() Config {
	return Config{
		Separator: " ",
		Padding:   1,
		ColSep:    "│",
	}
}

// Table is the value handed from stage to stage and finally rendered or
// serialized.
type Table struct {
	// Headers is the output header row. Empty means no header row.
	Headers []string
	// Rows holds the output data rows. After projection every row has
	// exactly len(Selected) fields. Group boundaries appear as rows
	// whose fields are all empty.
	Rows [][]string
	// Selected records, per output column, the 0-based index of the
	// source column it came from. Used to print original column numbers.
	Selected []int
}

// Process runs the full pipeline over raw input lines: filter, tokenize,
// resolve the header, project columns, sort, and group. The lines are
// expected to be newline-trimmed already.
func Process(lines []string, cfg Config) (*Table, error) {
	if cfg.Filter != "" {
		re, err := regexp.Compile(cfg.Filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		kept := lines[:0:0]
		for _, line := range lines {
			if re.MatchString(line) {
				kept = append(kept, line)
			}
		}
		lines = kept
	}

	headers, rows := resolveHeader(lines, cfg)

	t := &Table{Headers: headers, Rows: rows}
	if err := project(t, cfg); err != nil {
		return nil, err
	}

	if cfg.SortColumn > 0 {
		sortRows(t.Rows, cfg.SortColumn, len(t.Selected))
	}
	if cfg.GroupColumn > 0 {
		t.Rows = groupRows(t.Rows, cfg.GroupColumn, len(t.Selected), cfg.KeepGroupValues)
	}
	return t, nil
}

// Write renders t to w in the given format.
func Write(w io.Writer, f Format, t *Table, cfg Config) error {
	switch f {
	case Text:
		return writeText(w, t, cfg)
	case CSV:
		return writeCSV(w, t, ',')
	case TSV:
		return writeCSV(w, t, '\t')
	case JSON:
		return writeJSON(w, t, cfg.TitleColumn)
	case YAML:
		return writeYAML(w, t, cfg.TitleColumn)
	case HTML:
		return writeHTML(w, t)
	case Markdown:
		return writeMarkdown(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in the given format and returns the bytes.
func Marshal(f Format, t *Table, cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
