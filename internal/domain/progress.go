package domain

import "slices"

// Progress is the derived writing progress for the current text.
type Progress struct {
	WordCount       int     `json:"wordCount"`
	TargetWordCount int     `json:"targetWordCount"`
	Fraction        float64 `json:"fraction"`
	Percent         int     `json:"percent"`
	GoalReached     bool    `json:"goalReached"`
}

// CompletionSet holds course day numbers whose goal was reached at least once.
// It is kept sorted and free of duplicates, and only ever grows.
type CompletionSet []int

// NewCompletionSet normalizes days into a CompletionSet, dropping non-positive values.
func NewCompletionSet(days ...int) CompletionSet {
	out := make(CompletionSet, 0, len(days))
	for _, d := range days {
		if d > 0 {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Contains reports whether day is in the set.
func (c CompletionSet) Contains(day int) bool {
	_, found := slices.BinarySearch(c, day)
	return found
}

// With returns a set that also contains day. The receiver is not modified.
func (c CompletionSet) With(day int) CompletionSet {
	if day <= 0 || c.Contains(day) {
		return c
	}
	out := make(CompletionSet, 0, len(c)+1)
	out = append(out, c...)
	out = append(out, day)
	slices.Sort(out)
	return out
}
