package analysis

import "sort"

// CrossTab counts how often each pair of row and column answers occurred
// together. Every observed category appears on its axis, so cells may be zero.
type CrossTab struct {
	Rows  []string
	Cols  []string
	cells [][]int
}

// NewCrossTab pairs rows[i] with cols[i]. Both series are normalized the
// same way Frequency normalizes them. Axis categories are sorted lexically.
// Pairs beyond the shorter series are ignored.
func NewCrossTab(rows, cols []*string) *CrossTab {
	n := len(rows)
	if len(cols) < n {
		n = len(cols)
	}

	rowLabels := make([]string, n)
	colLabels := make([]string, n)
	for i := 0; i < n; i++ {
		rowLabels[i] = Normalize(rows[i])
		colLabels[i] = Normalize(cols[i])
	}

	ct := &CrossTab{
		Rows: distinctSorted(rowLabels),
		Cols: distinctSorted(colLabels),
	}
	rowIndex := indexOf(ct.Rows)
	colIndex := indexOf(ct.Cols)

	ct.cells = make([][]int, len(ct.Rows))
	for i := range ct.cells {
		ct.cells[i] = make([]int, len(ct.Cols))
	}
	for i := 0; i < n; i++ {
		ct.cells[rowIndex[rowLabels[i]]][colIndex[colLabels[i]]]++
	}
	return ct
}

// Count returns the co-occurrence count for a pair of categories.
func (ct *CrossTab) Count(row, col string) int {
	for i, r := range ct.Rows {
		if r != row {
			continue
		}
		for j, c := range ct.Cols {
			if c == col {
				return ct.cells[i][j]
			}
		}
	}
	return 0
}

// Cell returns the count at row index i and column index j.
func (ct *CrossTab) Cell(i, j int) int {
	return ct.cells[i][j]
}

func (ct *CrossTab) Empty() bool {
	return len(ct.Rows) == 0 || len(ct.Cols) == 0
}

func (ct *CrossTab) Total() int {
	total := 0
	for _, row := range ct.cells {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// RowTotals sums across columns. The result matches Frequency over the row
// series.
func (ct *CrossTab) RowTotals() Counts {
	totals := make([]int, len(ct.Rows))
	for i, row := range ct.cells {
		for _, v := range row {
			totals[i] += v
		}
	}
	return marginCounts(ct.Rows, totals)
}

// ColTotals sums across rows.
func (ct *CrossTab) ColTotals() Counts {
	totals := make([]int, len(ct.Cols))
	for _, row := range ct.cells {
		for j, v := range row {
			totals[j] += v
		}
	}
	return marginCounts(ct.Cols, totals)
}

func marginCounts(labels []string, totals []int) Counts {
	counts := make(Counts, len(labels))
	for i, l := range labels {
		counts[i] = Bucket{Label: l, Count: totals[i]}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

func distinctSorted(labels []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}

func indexOf(labels []string) map[string]int {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	return index
}
