package rcol

import (
	"sort"
	"strconv"
	"strings"
)

// sortRows stable-sorts rows in place by the given 1-based output column.
// When both values parse as floats they compare numerically (NaN compares
// equal to everything), otherwise byte-wise. A column number outside
// 1..numCols is a no-op.
func sortRows(rows [][]string, column, numCols int) {
	if column < 1 || column > numCols {
		return
	}
	idx := column - 1
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][idx], rows[j][idx]
		na, errA := strconv.ParseFloat(a, 64)
		nb, errB := strconv.ParseFloat(b, 64)
		if errA == nil && errB == nil {
			return na < nb
		}
		return strings.Compare(a, b) < 0
	})
}
