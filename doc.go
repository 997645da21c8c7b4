// Package rcol reshapes unstructured line-oriented text into an aligned
// tabular representation.
//
// Raw input lines run through a fixed pipeline: an optional regular
// expression drops non-matching lines, each surviving line is split into
// fields, the first line may be promoted to a header row, column specs
// select and reorder the output columns, and rows are then optionally
// sorted and grouped. The result is a [Table] that can be rendered as a
// width-aligned text grid or serialized.
//
// # Processing
//
// [Process] runs the pipeline over a slice of newline-trimmed lines,
// driven by a [Config]:
//
//	cfg := rcol.DefaultConfig()
//	cfg.SortColumn = 2
//	t, err := rcol.Process(lines, cfg)
//
// Column specs are 1-based. "3" selects the third source column, "2:4"
// selects columns two through four, and "4:2" selects them in reverse. A
// source column may appear any number of times. Fields missing from a row
// come out as empty strings, so every projected row has the same length.
//
// # Rendering
//
// [Write] renders a Table in one of the supported [Format] values:
//
//   - [Text] — aligned grid; borders, separators, numbering, and
//     alignment follow the Config toggles
//   - [CSV], [TSV] — delimiter-separated rows with standard quoting
//   - [JSON], [YAML] — array of objects keyed by header name, or an
//     object keyed by the first field in title-column mode
//   - [HTML] — a <table> with thead/tbody
//   - [Markdown] — GitHub-style pipe table
//
// Cell widths are measured by terminal display width: CSI and OSC escape
// sequences count as zero and East Asian wide characters count as two, so
// colored or wide input still lines up.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidFilter] — malformed filter regular expression
//   - [ErrInvalidColumnSpec] — zero, negative, or malformed column spec
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidPadding] — negative padding width
//
// Out-of-range sort and group column numbers are not errors; both are
// documented no-ops.
package rcol
