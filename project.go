package rcol

import (
	"fmt"
	"strconv"
	"strings"
)

// parseColumnSpecs resolves column specs into 0-based source indices, in
// the order given. A spec is a 1-based column number or an inclusive
// start:end range; start > end produces the descending sequence. Repeats
// are legal. Zero or anything non-numeric is an error.
func parseColumnSpecs(specs []string) ([]int, error) {
	var indices []int
	for _, spec := range specs {
		if strings.Contains(spec, ":") {
			parts := strings.Split(spec, ":")
			if len(parts) != 2 {
				return nil, fmt.Errorf("%w: bad range %q", ErrInvalidColumnSpec, spec)
			}
			start, err := parseColumnNumber(parts[0])
			if err != nil {
				return nil, err
			}
			end, err := parseColumnNumber(parts[1])
			if err != nil {
				return nil, err
			}
			if start <= end {
				for i := start; i <= end; i++ {
					indices = append(indices, i-1)
				}
			} else {
				for i := start; i >= end; i-- {
					indices = append(indices, i-1)
				}
			}
			continue
		}
		n, err := parseColumnNumber(spec)
		if err != nil {
			return nil, err
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}

func parseColumnNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a column number", ErrInvalidColumnSpec, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: column numbers are 1-based, got %d", ErrInvalidColumnSpec, n)
	}
	return n, nil
}

// project rewrites t's header and rows to the configured output columns
// and records the source index of each. With no specs every column is kept
// in input order, counting up to the widest row. Source indices beyond a
// given row yield empty fields, never an error, so every row ends up with
// exactly len(t.Selected) fields.
func project(t *Table, cfg Config) error {
	indices, err := parseColumnSpecs(cfg.Columns)
	if err != nil {
		return err
	}
	if len(cfg.Columns) == 0 {
		count := len(t.Headers)
		for _, row := range t.Rows {
			if len(row) > count {
				count = len(row)
			}
		}
		for i := 0; i < count; i++ {
			indices = append(indices, i)
		}
	}

	if len(t.Headers) > 0 {
		t.Headers = pick(t.Headers, indices)
	}
	for i, row := range t.Rows {
		t.Rows[i] = pick(row, indices)
	}
	t.Selected = indices

	// An explicit header bypasses projection: it is tokenized on its own
	// and sized to the output column count.
	if cfg.Header != "" {
		headers := splitLine(cfg.Header, cfg)
		for len(headers) < len(indices) {
			headers = append(headers, "")
		}
		t.Headers = headers[:len(indices)]
	}
	return nil
}

func pick(fields []string, indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		if idx < len(fields) {
			out[i] = fields[idx]
		}
	}
	return out
}
