// Package streak computes contribution streaks over a daily calendar
package streak

// Longest returns the longest run of consecutive positive counts
// counts must be ordered by day ascending and contiguous
func Longest(counts []int) int {
	run, best := 0, 0
	for _, c := range counts {
		if c > 0 {
			run++
			if run > best {
				best = run
			}
			continue
		}
		run = 0
	}
	return best
}

// Current returns the run of positive counts ending at the last day
// a zero on the last day alone does not break the run, today may still be in progress
func Current(counts []int) int {
	end := len(counts) - 1
	if end >= 0 && counts[end] <= 0 {
		end--
	}
	n := 0
	for i := end; i >= 0 && counts[i] > 0; i-- {
		n++
	}
	return n
}
