package domain

import "sort"

// Statistics summarizes the revealed votes of one round.
type Statistics struct {
	Average float64 `json:"average"`
	Median  int     `json:"median"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
}

// Summarize computes statistics over non-null votes. Returns nil when
// votes is empty so callers omit the block entirely. The median of an
// even-sized list is the upper-middle element of the sorted values,
// not an interpolated midpoint; clients depend on this exact value.
func Summarize(votes []int) *Statistics {
	if len(votes) == 0 {
		return nil
	}
	sorted := make([]int, len(votes))
	copy(sorted, votes)
	sort.Ints(sorted)

	sum := 0
	for _, v := range sorted {
		sum += v
	}
	return &Statistics{
		Average: float64(sum) / float64(len(sorted)),
		Median:  sorted[len(sorted)/2],
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
	}
}
