package rcol

// resolveHeader tokenizes the (already filtered) input lines and decides
// what, if anything, becomes the header row. Precedence:
//
//  1. RemoveHeader discards the first line outright; the rules below then
//     apply to the line after it.
//  2. An explicit Header means every line is data. The header string
//     itself is applied after projection, so Headers stays empty here.
//  3. NoHeadline means every line is data and Headers stays empty.
//  4. Otherwise the first line is promoted to the header row.
func resolveHeader(lines []string, cfg Config) (headers []string, rows [][]string) {
	if cfg.RemoveHeader && len(lines) > 0 {
		lines = lines[1:]
	}
	if cfg.Header == "" && !cfg.NoHeadline && len(lines) > 0 {
		headers = splitLine(lines[0], cfg)
		lines = lines[1:]
	}
	for _, line := range lines {
		rows = append(rows, splitLine(line, cfg))
	}
	return headers, rows
}
