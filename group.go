package rcol

// groupRows collapses consecutive duplicate values in the given 1-based
// output column of already sorted, projected rows. A change of value
// inserts an all-empty separator row before the current row; a repeated
// value has its group field blanked unless keepValues is set. The value
// compared against is always the original one, never the blanked field. A
// column number outside 1..numCols is a no-op.
func groupRows(rows [][]string, column, numCols int, keepValues bool) [][]string {
	if column < 1 || column > numCols {
		return rows
	}
	idx := column - 1
	out := make([][]string, 0, len(rows))
	var last string
	for i, row := range rows {
		val := row[idx]
		if i > 0 && val != last {
			out = append(out, make([]string, len(row)))
		}
		if i > 0 && val == last && !keepValues {
			row[idx] = ""
		}
		last = val
		out = append(out, row)
	}
	return out
}
