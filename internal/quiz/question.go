// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package quiz generates Caesar cipher practice questions and keeps score.
package quiz

import (
	"strings"

	"github.com/toeirei/caesar/internal/cipher"
)

// Question is a single practice round. It is immutable once generated.
type Question struct {
	Prompt    string           // text shown to the user
	Answer    string           // text the user must produce
	Shift     int              // shift magnitude, never 0
	Direction cipher.Direction // what the user is asked to do with Prompt
}

// Grade reports whether answer matches the expected answer. Only case is
// normalised; whitespace is significant.
func Grade(q Question, answer string) bool {
	return strings.ToUpper(answer) == q.Answer
}

// Feedback is the outcome of grading one submission.
type Feedback struct {
	Correct  bool
	Expected string
}
