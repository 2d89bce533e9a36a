// Package analysis computes the descriptive tallies behind each chart:
// frequency counts, multi-select explosions and two-way cross-tabulations.
package analysis

import (
	"sort"
	"strings"
)

const (
	// NoResponse replaces missing and blank answers.
	NoResponse = "No response"
	// Other collects every category cut by TopN.
	Other = "Other"
)

// Bucket is one category and how often it occurred.
type Bucket struct {
	Label string
	Count int
}

// Counts is a frequency table ordered by descending count.
type Counts []Bucket

// Total sums every bucket.
func (c Counts) Total() int {
	total := 0
	for _, b := range c {
		total += b.Count
	}
	return total
}

// Get returns the count for label, zero when absent.
func (c Counts) Get(label string) int {
	for _, b := range c {
		if b.Label == label {
			return b.Count
		}
	}
	return 0
}

func (c Counts) Labels() []string {
	labels := make([]string, len(c))
	for i, b := range c {
		labels[i] = b.Label
	}
	return labels
}

func (c Counts) Empty() bool {
	return len(c) == 0
}

// Normalize trims an answer and maps missing or blank answers to NoResponse.
func Normalize(v *string) string {
	if v == nil {
		return NoResponse
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return NoResponse
	}
	return s
}

// Frequency counts each normalized answer. Missing answers are a category
// of their own, so the total always equals len(values).
func Frequency(values []*string) Counts {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = Normalize(v)
	}
	return Tally(labels)
}

// Tally counts labels as given. Buckets are ordered by descending count;
// equal counts keep the order in which the label first appeared.
func Tally(labels []string) Counts {
	index := make(map[string]int)
	var counts Counts
	for _, l := range labels {
		i, ok := index[l]
		if !ok {
			i = len(counts)
			index[l] = i
			counts = append(counts, Bucket{Label: l})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// TopN keeps the first n buckets and folds the rest into a trailing Other
// bucket. Counts with n or fewer buckets, or n <= 0, are returned unchanged.
func TopN(c Counts, n int) Counts {
	if n <= 0 || len(c) <= n {
		return c
	}
	out := make(Counts, 0, n+1)
	out = append(out, c[:n]...)

	rest := 0
	for _, b := range c[n:] {
		rest += b.Count
	}
	return append(out, Bucket{Label: Other, Count: rest})
}
