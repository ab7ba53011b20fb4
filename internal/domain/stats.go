package domain

import "strconv"

// Statistics summarizes the completion state of a task list.
type Statistics struct {
	Total      int
	Completed  int
	Pending    int
	Percentage float64 // Completed share rounded to one decimal; zero when Total is 0
}

// HasPercentage returns true if a completion percentage is defined.
func (s Statistics) HasPercentage() bool {
	return s.Total > 0
}

// ComputeStatistics counts tasks by completion state.
func ComputeStatistics(tasks []*Task) Statistics {
	var s Statistics
	for _, t := range tasks {
		s.Total++
		if t.Completed {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.Percentage = roundOneDecimal(float64(s.Completed) / float64(s.Total) * 100)
	}
	return s
}

// roundOneDecimal rounds x to one decimal place, exact halves to even.
// Formatting rounds the exact binary value, so 6.25 becomes 6.2.
func roundOneDecimal(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return r
}
