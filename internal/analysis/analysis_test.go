package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrs(values ...string) []*string {
	out := make([]*string, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

func asMap(c Counts) map[string]int {
	m := make(map[string]int, len(c))
	for _, b := range c {
		m[b.Label] = b.Count
	}
	return m
}

func TestFrequencyBinaryField(t *testing.T) {
	values := append(ptrs("Yes", "No", "Yes", ""), nil)

	got := Frequency(values)

	assert.Equal(t, map[string]int{"Yes": 2, "No": 1, NoResponse: 2}, asMap(got))
	assert.Equal(t, len(values), got.Total())
}

func TestFrequencyOrder(t *testing.T) {
	got := Frequency(ptrs("b", "a", " a ", "c", "b", "a", "d"))

	assert.Equal(t, Counts{
		{Label: "a", Count: 3},
		{Label: "b", Count: 2},
		{Label: "c", Count: 1},
		{Label: "d", Count: 1},
	}, got)
}

func TestFrequencyTiesKeepFirstAppearance(t *testing.T) {
	got := Frequency(ptrs("Year 3", "Year 1", "Year 2", "Year 1", "Year 3", "Year 2"))

	assert.Equal(t, []string{"Year 3", "Year 1", "Year 2"}, got.Labels())
}

func TestFrequencySumsToRowCount(t *testing.T) {
	inputs := [][]*string{
		nil,
		ptrs("x"),
		append(ptrs("x", " ", "y", "x"), nil, nil),
		ptrs("a", "b", "c", "d", "e", "a"),
	}
	for _, values := range inputs {
		assert.Equal(t, len(values), Frequency(values).Total())
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		cell string
		want []string
	}{
		{"Visa, Mastercard\n, ", []string{"Visa", "Mastercard"}},
		{"Visa", []string{"Visa"}},
		{"", nil},
		{" , ,", nil},
		{"Master\ncard,Prepaid", []string{"Master card", "Prepaid"}},
		{"Debit\r\n", []string{"Debit"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokens(tt.cell), "cell %q", tt.cell)
	}
}

func TestExplodeTokenTotal(t *testing.T) {
	values := append(ptrs("Visa, Mastercard", "", "Visa,,Prepaid ,", "Virtual"), nil)

	tokens := Explode(values)

	expected := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		for _, seg := range strings.Split(*v, ",") {
			if strings.TrimSpace(seg) != "" {
				expected++
			}
		}
	}
	assert.Len(t, tokens, expected)
	assert.Equal(t, []string{"Visa", "Mastercard", "Visa", "Prepaid", "Virtual"}, tokens)
}

func TestMultiSelect(t *testing.T) {
	got := MultiSelect(append(ptrs("Visa, Mastercard", "Visa", " "), nil))

	assert.Equal(t, Counts{{Label: "Visa", Count: 2}, {Label: "Mastercard", Count: 1}}, got)
	assert.Zero(t, got.Get(NoResponse))
}

func TestMultiSelectAllMissing(t *testing.T) {
	assert.True(t, MultiSelect([]*string{nil, nil}).Empty())
}

func TestTopN(t *testing.T) {
	counts := Counts{{"A", 5}, {"B", 3}, {"C", 2}, {"D", 1}}

	assert.Equal(t, Counts{{"A", 5}, {"B", 3}, {Other, 3}}, TopN(counts, 2))
	assert.Equal(t, counts, TopN(counts, 4))
	assert.Equal(t, counts, TopN(counts, 10))
	assert.Equal(t, counts, TopN(counts, 0))
	assert.Equal(t, counts.Total(), TopN(counts, 1).Total())
}

func TestCrossTab(t *testing.T) {
	accounts := append(ptrs("Yes", "No", "Yes", " Yes"), nil)
	willing := append(ptrs("Yes", "Yes", "No", ""), ptrs("Maybe")...)

	ct := NewCrossTab(accounts, willing)

	assert.Equal(t, []string{"No", NoResponse, "Yes"}, ct.Rows)
	assert.Equal(t, []string{"Maybe", "No", NoResponse, "Yes"}, ct.Cols)
	assert.Equal(t, 1, ct.Count("Yes", "Yes"))
	assert.Equal(t, 1, ct.Count("Yes", "No"))
	assert.Equal(t, 1, ct.Count("Yes", NoResponse))
	assert.Equal(t, 1, ct.Count("No", "Yes"))
	assert.Equal(t, 1, ct.Count(NoResponse, "Maybe"))
	assert.Equal(t, 0, ct.Count("No", "Maybe"), "zero cells are kept")
	assert.Equal(t, 0, ct.Count("absent", "Yes"))
	assert.Equal(t, 5, ct.Total())
	assert.False(t, ct.Empty())
}

func TestCrossTabMarginsMatchFrequency(t *testing.T) {
	rows := append(ptrs("Year 1", "Year 2", "", "Year 1", "Year 3", "Year 2"), nil)
	cols := append(ptrs("Yes", "No", "Yes", "", "No", "Yes"), ptrs("Yes")...)

	ct := NewCrossTab(rows, cols)

	assert.Equal(t, asMap(Frequency(rows)), asMap(ct.RowTotals()))
	assert.Equal(t, asMap(Frequency(cols)), asMap(ct.ColTotals()))
}

func TestCrossTabCells(t *testing.T) {
	ct := NewCrossTab(ptrs("a", "b", "a"), ptrs("x", "x", "y"))

	require.Equal(t, []string{"a", "b"}, ct.Rows)
	require.Equal(t, []string{"x", "y"}, ct.Cols)
	assert.Equal(t, 1, ct.Cell(0, 0))
	assert.Equal(t, 1, ct.Cell(0, 1))
	assert.Equal(t, 1, ct.Cell(1, 0))
	assert.Equal(t, 0, ct.Cell(1, 1))
}

func TestCrossTabEmpty(t *testing.T) {
	ct := NewCrossTab(nil, nil)

	assert.True(t, ct.Empty())
	assert.Zero(t, ct.Total())
	assert.Empty(t, ct.RowTotals())
}
