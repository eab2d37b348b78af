// Copyright (c) 2026 Keymaster Team
// Caesar - Caesar cipher trainer
// This source code is licensed under the MIT license found in the LICENSE file.

package quiz

import "errors"

// ErrNoQuestion is returned when an answer is submitted before any question.
var ErrNoQuestion = errors.New("no active question")

// State is the position of a Session in its round cycle.
type State int

const (
	StateNoQuestion State = iota
	StateActive
	StateFeedback
)

func (s State) String() string {
	switch s {
	case StateNoQuestion:
		return "no-question"
	case StateActive:
		return "question-active"
	case StateFeedback:
		return "feedback-shown"
	default:
		return "unknown"
	}
}

// Session drives quiz rounds and owns the running score.
type Session struct {
	gen      *Generator
	state    State
	current  Question
	feedback Feedback
	score    Score
}

// NewSession starts in StateNoQuestion; call Next to get the first question.
func NewSession(gen *Generator) *Session {
	return &Session{gen: gen}
}

// Next discards the current question and generates a new one.
func (s *Session) Next() Question {
	s.current = s.gen.Generate()
	s.feedback = Feedback{}
	s.state = StateActive
	return s.current
}

// Submit grades answer against the current question and records the attempt.
// Re-submitting while feedback is shown grades the same question again and
// counts as a further attempt.
func (s *Session) Submit(answer string) (Feedback, error) {
	if s.state == StateNoQuestion {
		return Feedback{}, ErrNoQuestion
	}

	correct := Grade(s.current, answer)
	s.score.Record(correct)
	s.feedback = Feedback{Correct: correct, Expected: s.current.Answer}
	s.state = StateFeedback
	return s.feedback, nil
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Current returns the active question and whether there is one.
func (s *Session) Current() (Question, bool) {
	return s.current, s.state != StateNoQuestion
}

// Feedback returns the last grading outcome and whether it is being shown.
func (s *Session) Feedback() (Feedback, bool) {
	return s.feedback, s.state == StateFeedback
}

// Score returns a copy of the running score.
func (s *Session) Score() Score { return s.score }
