package barrier

import "pddtools/internal/model"

// MaxSteps caps how many steps the user can describe.
const MaxSteps = 10

// AddStepChoice is the answer that keeps the step loop going.
const AddStepChoice = "Добавить ещё шаг"

// Answers to the break point confirmation that accept detection.
const (
	ConfirmBreakChoice = "Да, это он"
	AutoDetectChoice   = "Определить автоматически"
)

// NewState returns the initial bot state at the welcome phase.
func NewState() model.BarrierState {
	return model.BarrierState{
		Phase:     model.PhaseWelcome,
		BreakStep: -1,
	}
}

// Apply feeds one user answer into the state machine and returns the
// next state. The input state is not modified. Answers arriving in a
// phase that does not expect them only advance the phase.
func Apply(state model.BarrierState, answer model.AnswerValue) model.BarrierState {
	s := state
	s.Steps = append([]model.BarrierStep(nil), state.Steps...)

	switch s.Phase {
	case model.PhaseWelcome:
		s.Phase = model.PhaseContext

	case model.PhaseContext:
		s.SelectedContext = answer.Choice
		s.Phase = model.PhaseStrength

	case model.PhaseStrength:
		s.MainStrengths = pickMany(answer)
		s.Phase = model.PhaseWeakness

	case model.PhaseWeakness:
		s.MainWeakness = answer.Choice
		s.Phase = model.PhaseStepsIntro

	case model.PhaseStepsIntro:
		s.Phase = model.PhaseStepText
		s.CurrentStepIndex = 0

	case model.PhaseStepText:
		idx := s.CurrentStepIndex
		step := model.BarrierStep{Index: idx + 1, Text: answer.Text}
		if idx < len(s.Steps) {
			s.Steps[idx] = step
		} else {
			s.Steps = append(s.Steps, step)
		}
		s.Phase = model.PhaseStepX

	case model.PhaseStepX:
		s.Steps[s.CurrentStepIndex].X = answer.Number
		s.Phase = model.PhaseStepY

	case model.PhaseStepY:
		s.Steps[s.CurrentStepIndex].Y = answer.Number
		s.CurrentStepIndex++
		if s.CurrentStepIndex < MaxSteps {
			s.Phase = model.PhaseStepMore
		} else {
			s.Phase = model.PhaseBreakPoint
			s.BreakStep = DetectBreakPoint(s.Steps)
		}

	case model.PhaseStepMore:
		if answer.Choice == AddStepChoice && s.CurrentStepIndex < MaxSteps {
			s.Phase = model.PhaseStepText
		} else {
			s.Phase = model.PhaseBreakPoint
			s.BreakStep = DetectBreakPoint(s.Steps)
		}

	case model.PhaseBreakPoint:
		if answer.Choice == ConfirmBreakChoice || answer.Choice == AutoDetectChoice {
			if s.BreakStep == -1 {
				s.BreakStep = DetectBreakPoint(s.Steps)
			}
			if s.BreakStep == -1 {
				s.Phase = model.PhaseBreakManual
			} else {
				s.Phase = model.PhaseInsight
				s.Profile = DetectProfile(s.Steps)
			}
		} else {
			s.Phase = model.PhaseBreakManual
		}

	case model.PhaseBreakManual:
		manual := int(answer.Number) - 1
		if manual < 0 {
			manual = 0
		}
		if manual > len(s.Steps)-1 {
			manual = len(s.Steps) - 1
		}
		s.BreakStep = manual
		s.Phase = model.PhaseInsight
		s.Profile = DetectProfile(s.Steps)

	case model.PhaseInsight:
		s.Phase = model.PhaseAdditionalStrength

	case model.PhaseAdditionalStrength:
		s.AdditionalStrengths = pickMany(answer)
		s.Phase = model.PhaseRecalc

	case model.PhaseRecalc:
		s.Phase = model.PhaseResult

	case model.PhaseResult:
		s.Phase = model.PhaseDone
	}

	return s
}

// RecalcBreakY applies RecalcY to the state's break step, or returns
// 0 when no break step is set.
func RecalcBreakY(state model.BarrierState) float64 {
	if state.BreakStep < 0 || state.BreakStep >= len(state.Steps) {
		return 0
	}
	return RecalcY(state.Steps[state.BreakStep].Y, state.MainWeakness, len(state.AdditionalStrengths))
}

func pickMany(answer model.AnswerValue) []string {
	if len(answer.Choices) > 0 {
		return append([]string(nil), answer.Choices...)
	}
	if answer.Choice != "" {
		return []string{answer.Choice}
	}
	return nil
}
