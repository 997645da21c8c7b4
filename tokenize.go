package rcol

import "strings"

// splitLine breaks a raw line into fields. In collapse mode any run of
// whitespace delimits fields and leading or trailing runs produce no empty
// fields. Otherwise the configured separator is matched literally;
// splitting an empty line yields one empty field.
func splitLine(line string, cfg Config) []string {
	if cfg.Collapse {
		return strings.Fields(line)
	}
	return strings.Split(line, cfg.Separator)
}
