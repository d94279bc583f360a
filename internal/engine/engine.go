// Package engine advances trainer sessions through scenario steps and
// computes their results. Sessions are treated as immutable values:
// every operation takes a session and returns a new one.
package engine

import (
	"math"
	"time"

	"github.com/google/uuid"

	"pddtools/internal/model"
)

// generalCategory receives scores from options and steps that do not
// name a category of their own.
const generalCategory = "general"

// NewSession starts a fresh session at the first step of the scenario.
func NewSession(userID string, sc *model.Scenario) model.Session {
	return model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		TrainerID: sc.ID,
		StartedAt: time.Now().UTC(),
		Answers:   map[string]model.Answer{},
		Scores:    map[string]float64{},
	}
}

// CurrentStep returns the step the session is positioned at, with any
// dynamic resolver applied. Returns nil when the session has run past
// the end of the scenario.
func CurrentStep(sc *model.Scenario, session model.Session) *model.Step {
	if session.CurrentStepIndex < 0 || session.CurrentStepIndex >= len(sc.Steps) {
		return nil
	}
	step := sc.Steps[session.CurrentStepIndex]
	if step.Dynamic {
		if resolve, ok := sc.Resolvers[step.ID]; ok {
			step = resolve(&session, step)
		}
	}
	return &step
}

// Progress reports completion as a whole percentage. The last step
// counts as 100, so a single-step scenario is always complete.
func Progress(sc *model.Scenario, session model.Session) int {
	total := len(sc.Steps)
	if total <= 1 {
		return 100
	}
	idx := session.CurrentStepIndex
	if idx < 0 {
		idx = 0
	}
	if idx > total-1 {
		idx = total - 1
	}
	return int(math.Round(float64(idx) / float64(total-1) * 100))
}

// Advance records an answer for the named step and moves the session
// to its next step. The input session is never modified. Answers for
// step IDs not present in the scenario are silently ignored.
func Advance(sc *model.Scenario, session model.Session, stepID string, value model.AnswerValue) model.Session {
	stepIdx := sc.StepIndex(stepID)
	if stepIdx < 0 {
		return session
	}
	step := sc.Steps[stepIdx]
	if step.Dynamic {
		if resolve, ok := sc.Resolvers[step.ID]; ok {
			step = resolve(&session, step)
		}
	}

	next := session.Clone()
	next.Answers[stepID] = model.Answer{
		StepID:    stepID,
		Kind:      step.Kind,
		Value:     value,
		Timestamp: time.Now().UTC(),
	}
	applyScores(&next, step, value)
	next.CurrentStepIndex = nextIndex(sc, step, stepIdx, value)
	return next
}

// SkipToNext moves past the current step without recording an answer.
// Used for intro, info and timer steps.
func SkipToNext(sc *model.Scenario, session model.Session) model.Session {
	next := session.Clone()
	if next.CurrentStepIndex < len(sc.Steps) {
		next.CurrentStepIndex++
	}
	return next
}

// Complete marks the session finished and attaches its result.
func Complete(session model.Session, result *model.Result) model.Session {
	next := session.Clone()
	now := time.Now().UTC()
	next.CompletedAt = &now
	next.Result = result
	return next
}

// applyScores folds the answer's score contribution into the session.
// Category resolution order: option, then step, then "general".
func applyScores(session *model.Session, step model.Step, value model.AnswerValue) {
	switch step.Kind {
	case model.StepSingleChoice, model.StepConfirm:
		addOptionScore(session, step, value.Choice)
	case model.StepMultipleChoice:
		for _, id := range value.Choices {
			addOptionScore(session, step, id)
		}
	case model.StepScale:
		cat := step.ScoreCategory
		if cat == "" {
			cat = generalCategory
		}
		session.Scores[cat] += value.Number
	}
}

func addOptionScore(session *model.Session, step model.Step, optionID string) {
	opt := step.Option(optionID)
	if opt == nil || opt.Score == nil {
		return
	}
	cat := opt.ScoreCategory
	if cat == "" {
		cat = step.ScoreCategory
	}
	if cat == "" {
		cat = generalCategory
	}
	session.Scores[cat] += *opt.Score
}

// nextIndex picks the step the session lands on after answering.
// Branch priority: a single-choice option's nextStep, a confirm step's
// yes/no targets, the step's own nextStep, then sequential order.
// A branch target missing from the scenario falls back to sequential.
func nextIndex(sc *model.Scenario, step model.Step, stepIdx int, value model.AnswerValue) int {
	sequential := stepIdx + 1

	if step.Kind == model.StepSingleChoice {
		if opt := step.Option(value.Choice); opt != nil && opt.NextStep != "" {
			if idx := sc.StepIndex(opt.NextStep); idx >= 0 {
				return idx
			}
			return sequential
		}
	}

	if step.Kind == model.StepConfirm {
		target := step.ConfirmNo
		if value.Choice == "yes" {
			target = step.ConfirmYes
		}
		if target != "" {
			if idx := sc.StepIndex(target); idx >= 0 {
				return idx
			}
		}
		return sequential
	}

	if step.NextStep != "" && len(step.Options) == 0 {
		if idx := sc.StepIndex(step.NextStep); idx >= 0 {
			return idx
		}
	}
	return sequential
}
