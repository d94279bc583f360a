package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pddtools/internal/cache"
	"pddtools/internal/engine"
	"pddtools/internal/model"
	"pddtools/internal/repository"
	"pddtools/internal/scenario"
)

var (
	ErrUnknownTrainer = errors.New("unknown trainer")
	ErrNoSession      = errors.New("no active session")
)

// TrainerStepView is what the client renders for one step.
type TrainerStepView struct {
	Session  *model.Session `json:"session"`
	Step     *model.Step    `json:"step"`
	Progress int            `json:"progress"`
}

// TrainerService runs trainer sessions: starting, advancing through
// steps and producing the final result and per-trainer stats.
type TrainerService struct {
	sessionRepo  repository.TrainerSessionRepo
	sessionCache cache.SessionCache
	statsCache   cache.StatsCache
}

// NewTrainerService creates a new trainer service
func NewTrainerService(
	sessionRepo repository.TrainerSessionRepo,
	sessionCache cache.SessionCache,
	statsCache cache.StatsCache,
) *TrainerService {
	return &TrainerService{
		sessionRepo:  sessionRepo,
		sessionCache: sessionCache,
		statsCache:   statsCache,
	}
}

// Trainers lists the available trainer IDs in catalog order.
func (s *TrainerService) Trainers() []string {
	return scenario.IDs()
}

// Start begins a fresh session, replacing any unfinished one.
func (s *TrainerService) Start(ctx context.Context, userID, trainerID string) (*TrainerStepView, error) {
	sc := scenario.Get(trainerID)
	if sc == nil {
		return nil, ErrUnknownTrainer
	}

	session := engine.NewSession(userID, sc)
	if err := s.sessionCache.Set(ctx, &session); err != nil {
		log.Printf("failed to cache session %s: %v", session.ID, err)
	}
	return s.view(sc, session), nil
}

// Current returns the user's unfinished session for a trainer, or
// ErrNoSession when there is none.
func (s *TrainerService) Current(ctx context.Context, userID, trainerID string) (*TrainerStepView, error) {
	sc := scenario.Get(trainerID)
	if sc == nil {
		return nil, ErrUnknownTrainer
	}

	session, err := s.sessionCache.Get(ctx, userID, trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrNoSession
	}
	return s.view(sc, *session), nil
}

// Answer records one answer and advances the session. When the
// session lands on the result step it is completed automatically.
func (s *TrainerService) Answer(ctx context.Context, userID, trainerID, stepID string, value model.AnswerValue) (*TrainerStepView, error) {
	sc := scenario.Get(trainerID)
	if sc == nil {
		return nil, ErrUnknownTrainer
	}

	session, err := s.sessionCache.Get(ctx, userID, trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrNoSession
	}

	next := engine.Advance(sc, *session, stepID, value)

	if step := engine.CurrentStep(sc, next); step != nil && step.Kind == model.StepResult {
		return s.complete(ctx, sc, next)
	}

	if err := s.sessionCache.Set(ctx, &next); err != nil {
		log.Printf("failed to cache session %s: %v", next.ID, err)
	}
	return s.view(sc, next), nil
}

// Skip moves past a non-answer step (intro, info, timer).
func (s *TrainerService) Skip(ctx context.Context, userID, trainerID string) (*TrainerStepView, error) {
	sc := scenario.Get(trainerID)
	if sc == nil {
		return nil, ErrUnknownTrainer
	}

	session, err := s.sessionCache.Get(ctx, userID, trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrNoSession
	}

	next := engine.SkipToNext(sc, *session)

	if step := engine.CurrentStep(sc, next); step != nil && step.Kind == model.StepResult {
		return s.complete(ctx, sc, next)
	}

	if err := s.sessionCache.Set(ctx, &next); err != nil {
		log.Printf("failed to cache session %s: %v", next.ID, err)
	}
	return s.view(sc, next), nil
}

func (s *TrainerService) complete(ctx context.Context, sc *model.Scenario, session model.Session) (*TrainerStepView, error) {
	var result *model.Result
	if spec := engine.ResultSpecFor(sc.ID); spec != nil {
		result = engine.Calculate(spec, session)
	}
	done := engine.Complete(session, result)

	if err := s.sessionRepo.Create(ctx, &done); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	if err := s.sessionCache.Delete(ctx, done.UserID, done.TrainerID); err != nil {
		log.Printf("failed to clear session cache for %s: %v", done.UserID, err)
	}
	if err := s.statsCache.Delete(ctx, done.UserID); err != nil {
		log.Printf("failed to invalidate stats for %s: %v", done.UserID, err)
	}
	return s.view(sc, done), nil
}

func (s *TrainerService) view(sc *model.Scenario, session model.Session) *TrainerStepView {
	return &TrainerStepView{
		Session:  &session,
		Step:     engine.CurrentStep(sc, session),
		Progress: engine.Progress(sc, session),
	}
}

// Stats builds per-trainer stats for a user. The trend compares the
// last two completed sessions' totals with a dead zone of 2 points.
func (s *TrainerService) Stats(ctx context.Context, userID string) ([]*model.TrainerStats, error) {
	if cached, err := s.statsCache.Get(ctx, userID); err == nil && cached != nil {
		return cached, nil
	}

	stats := make([]*model.TrainerStats, 0, len(scenario.IDs()))
	for _, trainerID := range scenario.IDs() {
		st, err := s.trainerStats(ctx, userID, trainerID)
		if err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}

	if err := s.statsCache.Set(ctx, userID, stats); err != nil {
		log.Printf("failed to cache stats for %s: %v", userID, err)
	}
	return stats, nil
}

func (s *TrainerService) trainerStats(ctx context.Context, userID, trainerID string) (*model.TrainerStats, error) {
	all, err := s.sessionRepo.ListByUserTrainer(ctx, userID, trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var completed []*model.Session
	for _, sess := range all {
		if sess.Completed() {
			completed = append(completed, sess)
		}
	}

	st := &model.TrainerStats{
		TrainerID:         trainerID,
		TotalSessions:     len(all),
		CompletedSessions: len(completed),
		LastScores:        map[string]float64{},
		Trend:             model.TrendStable,
	}
	if len(completed) == 0 {
		return st, nil
	}

	last := completed[len(completed)-1]
	st.LastSessionDate = last.CompletedAt
	if last.Result != nil {
		for k, v := range last.Result.Scores {
			st.LastScores[k] = v
		}
	}

	if len(completed) >= 2 {
		prev := completed[len(completed)-2]
		if prev.Result != nil && last.Result != nil {
			lastTotal := last.Result.Scores["total"]
			prevTotal := prev.Result.Scores["total"]
			switch {
			case lastTotal > prevTotal+2:
				st.Trend = model.TrendUp
			case lastTotal < prevTotal-2:
				st.Trend = model.TrendDown
			}
		}
	}
	return st, nil
}
