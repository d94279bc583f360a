package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"pddtools/internal/barrier"
	"pddtools/internal/cache"
	"pddtools/internal/model"
	"pddtools/internal/repository"
)

// BarrierPrompt is the bot's side of one dialogue turn: the message
// text plus the widget the client should render for the answer.
type BarrierPrompt struct {
	Text    string   `json:"text"`
	Widget  string   `json:"widget"`
	Options []string `json:"options,omitempty"`
	Max     int      `json:"max,omitempty"`
	Min     int      `json:"min,omitempty"`
	MaxVal  int      `json:"maxVal,omitempty"`
}

// BarrierTurn is the result of applying one user answer.
type BarrierTurn struct {
	State    *model.BarrierState `json:"state"`
	Prompt   *BarrierPrompt      `json:"prompt,omitempty"`
	Profile  *model.ProfileText  `json:"profile,omitempty"`
	NewY     *float64            `json:"newY,omitempty"`
	Finished bool                `json:"finished"`
}

// BarrierService drives the barrier bot dialogue and persists the
// finished session for cross-device sync.
type BarrierService struct {
	stateCache cache.BarrierCache
	sessions   repository.ToolSessionRepo
}

// NewBarrierService creates a new barrier service
func NewBarrierService(stateCache cache.BarrierCache, sessions repository.ToolSessionRepo) *BarrierService {
	return &BarrierService{
		stateCache: stateCache,
		sessions:   sessions,
	}
}

// Start resets the user's barrier dialogue to the welcome phase.
func (s *BarrierService) Start(ctx context.Context, userID string) (*BarrierTurn, error) {
	state := barrier.NewState()
	if err := s.stateCache.Set(ctx, userID, &state); err != nil {
		return nil, fmt.Errorf("failed to store barrier state: %w", err)
	}
	return s.turn(state), nil
}

// Current returns the user's dialogue state, starting a new one when
// nothing is in progress.
func (s *BarrierService) Current(ctx context.Context, userID string) (*BarrierTurn, error) {
	state, err := s.stateCache.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load barrier state: %w", err)
	}
	if state == nil {
		return s.Start(ctx, userID)
	}
	return s.turn(*state), nil
}

// Answer applies one user answer to the dialogue. Reaching the done
// phase archives the session and clears the state.
func (s *BarrierService) Answer(ctx context.Context, userID string, answer model.AnswerValue) (*BarrierTurn, error) {
	state, err := s.stateCache.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load barrier state: %w", err)
	}
	if state == nil {
		fresh := barrier.NewState()
		state = &fresh
	}

	next := barrier.Apply(*state, answer)

	if next.Phase == model.PhaseDone {
		if err := s.archive(ctx, userID, next); err != nil {
			log.Printf("failed to archive barrier session for %s: %v", userID, err)
		}
		if err := s.stateCache.Delete(ctx, userID); err != nil {
			log.Printf("failed to clear barrier state for %s: %v", userID, err)
		}
	} else if err := s.stateCache.Set(ctx, userID, &next); err != nil {
		return nil, fmt.Errorf("failed to store barrier state: %w", err)
	}

	return s.turn(next), nil
}

func (s *BarrierService) archive(ctx context.Context, userID string, state model.BarrierState) error {
	steps := make([]interface{}, len(state.Steps))
	for i, st := range state.Steps {
		steps[i] = map[string]interface{}{
			"index": st.Index,
			"text":  st.Text,
			"x":     st.X,
			"y":     st.Y,
		}
	}
	session := &model.ToolSession{
		ID:     uuid.NewString(),
		UserID: userID,
		Tool:   model.ToolBarrierBot,
		Data: map[string]interface{}{
			"date":               time.Now().UTC().Format("2006-01-02"),
			"selectedContext":    state.SelectedContext,
			"mainStrength":       state.MainStrengths,
			"mainWeakness":       state.MainWeakness,
			"steps":              steps,
			"breakStep":          state.BreakStep,
			"additionalStrength": state.AdditionalStrengths,
			"psychProfile":       state.Profile,
		},
		CreatedAt: time.Now().UTC(),
	}
	return s.sessions.Insert(ctx, session)
}

func (s *BarrierService) turn(state model.BarrierState) *BarrierTurn {
	turn := &BarrierTurn{
		State:    &state,
		Prompt:   promptFor(state),
		Finished: state.Phase == model.PhaseDone,
	}
	if state.Profile != "" {
		if text, ok := barrier.ProfileTexts[state.Profile]; ok {
			turn.Profile = &text
		}
	}
	if state.Phase == model.PhaseRecalc || state.Phase == model.PhaseResult {
		y := barrier.RecalcBreakY(state)
		turn.NewY = &y
	}
	return turn
}

// Widgets the client renders for an answer.
const (
	widgetChoices   = "choices"
	widgetMulti     = "multi_choices"
	widgetSlider    = "slider"
	widgetTextInput = "text_input"
	widgetConfirm   = "confirm"
)

func promptFor(state model.BarrierState) *BarrierPrompt {
	switch state.Phase {
	case model.PhaseWelcome:
		return &BarrierPrompt{
			Text:   "Привет! Я помогу найти точку, где ломаются твои попытки. Начнём?",
			Widget: widgetConfirm,
		}
	case model.PhaseContext:
		return &BarrierPrompt{
			Text:    "В какой сфере была попытка, которую мы разберём?",
			Widget:  widgetChoices,
			Options: barrier.Contexts,
		}
	case model.PhaseStrength:
		return &BarrierPrompt{
			Text:    "Какие твои сильные стороны помогали в этой попытке? Выбери до трёх.",
			Widget:  widgetMulti,
			Options: barrier.Strengths,
			Max:     3,
		}
	case model.PhaseWeakness:
		return &BarrierPrompt{
			Text:    "Что чаще всего мешает тебе доводить начатое до конца?",
			Widget:  widgetChoices,
			Options: barrier.Weaknesses,
		}
	case model.PhaseStepsIntro:
		return &BarrierPrompt{
			Text:   "Теперь вспомним попытку по шагам. Для каждого шага оценим веру в успех и напряжение. Готов?",
			Widget: widgetConfirm,
		}
	case model.PhaseStepText:
		return &BarrierPrompt{
			Text:   fmt.Sprintf("Шаг %d. Что ты сделал?", state.CurrentStepIndex+1),
			Widget: widgetTextInput,
		}
	case model.PhaseStepX:
		return &BarrierPrompt{
			Text:   "Насколько ты верил в успех на этом шаге?",
			Widget: widgetSlider,
			Min:    1,
			MaxVal: 10,
		}
	case model.PhaseStepY:
		return &BarrierPrompt{
			Text:   "Какое было внутреннее напряжение?",
			Widget: widgetSlider,
			Min:    0,
			MaxVal: 10,
		}
	case model.PhaseStepMore:
		return &BarrierPrompt{
			Text:    "Добавим ещё шаг или переходим к анализу?",
			Widget:  widgetChoices,
			Options: []string{barrier.AddStepChoice, "Перейти к анализу"},
		}
	case model.PhaseBreakPoint:
		text := "Похоже, точка срыва не очевидна. Определить автоматически или укажешь сам?"
		if state.BreakStep >= 0 && state.BreakStep < len(state.Steps) {
			text = fmt.Sprintf("Похоже, срыв случился на шаге %d: «%s». Это он?", state.BreakStep+1, state.Steps[state.BreakStep].Text)
		}
		return &BarrierPrompt{
			Text:    text,
			Widget:  widgetChoices,
			Options: []string{barrier.ConfirmBreakChoice, barrier.AutoDetectChoice, "Нет, другой шаг"},
		}
	case model.PhaseBreakManual:
		return &BarrierPrompt{
			Text:   "На каком шаге всё сломалось? Укажи номер.",
			Widget: widgetSlider,
			Min:    1,
			MaxVal: len(state.Steps),
		}
	case model.PhaseInsight:
		return &BarrierPrompt{
			Text:   "Я вижу твой психологический профиль. Посмотрим, что можно изменить?",
			Widget: widgetConfirm,
		}
	case model.PhaseAdditionalStrength:
		return &BarrierPrompt{
			Text:    "Какие ещё свои качества ты мог бы подключить в точке срыва? Выбери до трёх.",
			Widget:  widgetMulti,
			Options: barrier.Strengths,
			Max:     3,
		}
	case model.PhaseRecalc:
		return &BarrierPrompt{
			Text:   "С этими опорами напряжение в точке срыва было бы ниже. Показать пересчитанный график?",
			Widget: widgetConfirm,
		}
	case model.PhaseResult:
		return &BarrierPrompt{
			Text:   "Вот полная картина твоей попытки. Сохранить разбор?",
			Widget: widgetConfirm,
		}
	default:
		return nil
	}
}
