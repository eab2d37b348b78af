// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package quiz

import "math"

// Score counts graded attempts for the lifetime of a session.
type Score struct {
	Correct int
	Total   int
}

// Record adds one attempt.
func (s *Score) Record(correct bool) {
	s.Total++
	if correct {
		s.Correct++
	}
}

// Percent returns the rounded share of correct attempts, 0 before the first.
func (s Score) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
}
