package model

import "time"

// AnswerValue carries one raw user answer. Exactly one field is set,
// depending on the step kind that produced it.
type AnswerValue struct {
	Choice  string   `json:"choice,omitempty" bson:"choice,omitempty"`
	Choices []string `json:"choices,omitempty" bson:"choices,omitempty"`
	Number  float64  `json:"number,omitempty" bson:"number,omitempty"`
	Text    string   `json:"text,omitempty" bson:"text,omitempty"`
}

// Answer is one recorded answer event within a session
type Answer struct {
	StepID    string      `json:"stepId" bson:"stepId"`
	Kind      StepKind    `json:"type" bson:"type"`
	Value     AnswerValue `json:"value" bson:"value"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
}

// Session is one user's attempt at a scenario. Treated as a value:
// the engine reads a session, produces a new one, and never mutates
// the input, so concurrent advances cannot race.
type Session struct {
	ID               string             `json:"id" bson:"_id,omitempty"`
	UserID           string             `json:"userId" bson:"userId"`
	TrainerID        string             `json:"trainerId" bson:"trainerId"`
	StartedAt        time.Time          `json:"startedAt" bson:"startedAt"`
	CompletedAt      *time.Time         `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CurrentStepIndex int                `json:"currentStepIndex" bson:"currentStepIndex"`
	Answers          map[string]Answer  `json:"answers" bson:"answers"`
	Scores           map[string]float64 `json:"scores" bson:"scores"`
	Result           *Result            `json:"result,omitempty" bson:"result,omitempty"`
}

// Clone returns a deep copy of the session's mutable parts.
func (s *Session) Clone() Session {
	out := *s
	out.Answers = make(map[string]Answer, len(s.Answers))
	for k, v := range s.Answers {
		out.Answers[k] = v
	}
	out.Scores = make(map[string]float64, len(s.Scores))
	for k, v := range s.Scores {
		out.Scores[k] = v
	}
	return out
}

// Completed reports whether the session has reached its result step.
func (s *Session) Completed() bool {
	return s.CompletedAt != nil
}

// Answer returns the recorded answer for a step, if any.
func (s *Session) Answer(stepID string) (Answer, bool) {
	a, ok := s.Answers[stepID]
	return a, ok
}
