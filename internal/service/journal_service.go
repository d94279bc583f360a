package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"pddtools/internal/journal"
	"pddtools/internal/model"
	"pddtools/internal/repository"
)

// JournalService runs the diary and the progress check-in on top of
// the synced tool session history.
type JournalService struct {
	templates repository.TemplateRepo
	syncSvc   *SyncService

	mu  sync.Mutex
	rng *rand.Rand
}

// NewJournalService creates a new journal service
func NewJournalService(templates repository.TemplateRepo, syncSvc *SyncService) *JournalService {
	return &JournalService{
		templates: templates,
		syncSvc:   syncSvc,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// DiaryTemplates returns the admin-configured diary copy, falling
// back to the built-in defaults.
func (s *JournalService) DiaryTemplates(ctx context.Context) *journal.DiaryTemplates {
	tpl, err := s.templates.GetDiary(ctx)
	if err != nil {
		log.Printf("failed to load diary templates: %v", err)
	}
	if tpl == nil {
		return journal.DefaultDiaryTemplates()
	}
	return tpl
}

// ProgressTemplates returns the progress check-in copy.
func (s *JournalService) ProgressTemplates(ctx context.Context) *journal.ProgressTemplates {
	tpl, err := s.templates.GetProgress(ctx)
	if err != nil {
		log.Printf("failed to load progress templates: %v", err)
	}
	if tpl == nil {
		return journal.DefaultProgressTemplates()
	}
	return tpl
}

// SetDiaryTemplates stores an admin override of the diary copy.
func (s *JournalService) SetDiaryTemplates(ctx context.Context, tpl *journal.DiaryTemplates) error {
	return s.templates.SetDiary(ctx, tpl)
}

// SetProgressTemplates stores an admin override of the progress copy.
func (s *JournalService) SetProgressTemplates(ctx context.Context, tpl *journal.ProgressTemplates) error {
	return s.templates.SetProgress(ctx, tpl)
}

// AnalyzeDiary tags a finished entry, builds the analysis against the
// user's history and saves the entry to the sync store.
func (s *JournalService) AnalyzeDiary(ctx context.Context, userID string, entry model.DiaryEntry) (*model.DiaryEntry, *journal.DiaryResult, error) {
	tpl := s.DiaryTemplates(ctx)

	texts := []string{entry.Situation, entry.Thoughts, entry.Emotions, entry.Body, entry.Action}
	entry.EmotionTags, entry.IntensityScore = journal.DetectEmotions(texts, tpl.EmotionDict)
	entry.PatternTags = journal.DetectPatterns(texts, tpl.PatternRules)
	if entry.Date == "" {
		entry.Date = time.Now().UTC().Format("2006-01-02")
	}

	history, err := s.diaryHistory(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	result := journal.BuildDiaryResult(entry, history, tpl, s.rng)
	s.mu.Unlock()

	if _, err := s.syncSvc.Save(ctx, userID, model.ToolDiary, diaryPayload(entry)); err != nil {
		return nil, nil, fmt.Errorf("failed to save diary entry: %w", err)
	}
	return &entry, &result, nil
}

// DiarySupport picks the supportive closing line for a reflected
// entry.
func (s *JournalService) DiarySupport(answers []string, entry model.DiaryEntry) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return journal.GenerateSupport(answers, entry, s.rng)
}

// ProgressCheckIn compares a new check-in against the previous one,
// saves it and returns the comparison text.
func (s *JournalService) ProgressCheckIn(ctx context.Context, userID string, entry model.ProgressEntry) (string, error) {
	tpl := s.ProgressTemplates(ctx)

	if entry.Date == "" {
		entry.Date = time.Now().UTC().Format("2006-01-02")
	}

	history, err := s.progressHistory(ctx, userID)
	if err != nil {
		return "", err
	}
	var prev *model.ProgressEntry
	if len(history) > 0 {
		prev = &history[len(history)-1]
	}

	s.mu.Lock()
	text := journal.BuildProgressResult(entry, prev, tpl, len(history)+1, s.rng)
	s.mu.Unlock()

	if _, err := s.syncSvc.Save(ctx, userID, model.ToolProgress, progressPayload(entry)); err != nil {
		return "", fmt.Errorf("failed to save progress entry: %w", err)
	}
	return text, nil
}

func (s *JournalService) diaryHistory(ctx context.Context, userID string) ([]model.DiaryEntry, error) {
	payloads, err := s.syncSvc.Load(ctx, userID, model.ToolDiary)
	if err != nil {
		return nil, err
	}
	entries := make([]model.DiaryEntry, 0, len(payloads))
	for _, p := range payloads {
		entries = append(entries, diaryFromPayload(p))
	}
	return entries, nil
}

func (s *JournalService) progressHistory(ctx context.Context, userID string) ([]model.ProgressEntry, error) {
	payloads, err := s.syncSvc.Load(ctx, userID, model.ToolProgress)
	if err != nil {
		return nil, err
	}
	entries := make([]model.ProgressEntry, 0, len(payloads))
	for _, p := range payloads {
		entries = append(entries, progressFromPayload(p))
	}
	return entries, nil
}

func diaryPayload(e model.DiaryEntry) map[string]interface{} {
	return map[string]interface{}{
		"date":            e.Date,
		"situation":       e.Situation,
		"thoughts":        e.Thoughts,
		"emotions":        e.Emotions,
		"body":            e.Body,
		"action":          e.Action,
		"emotion_tags":    e.EmotionTags,
		"pattern_tags":    e.PatternTags,
		"intensity_score": e.IntensityScore,
	}
}

func diaryFromPayload(p map[string]interface{}) model.DiaryEntry {
	e := model.DiaryEntry{
		Date:           str(p["date"]),
		Situation:      str(p["situation"]),
		Thoughts:       str(p["thoughts"]),
		Emotions:       str(p["emotions"]),
		Body:           str(p["body"]),
		Action:         str(p["action"]),
		EmotionTags:    strSlice(p["emotion_tags"]),
		PatternTags:    strSlice(p["pattern_tags"]),
		IntensityScore: int(num(p["intensity_score"])),
	}
	return e
}

func progressPayload(e model.ProgressEntry) map[string]interface{} {
	values := make(map[string]interface{}, len(e.Values))
	for k, v := range e.Values {
		values[k] = v
	}
	return map[string]interface{}{
		"date":        e.Date,
		"values":      values,
		"main_focus":  e.MainFocus,
		"key_thought": e.KeyThought,
	}
}

func progressFromPayload(p map[string]interface{}) model.ProgressEntry {
	e := model.ProgressEntry{
		Date:       str(p["date"]),
		MainFocus:  str(p["main_focus"]),
		KeyThought: str(p["key_thought"]),
		Values:     map[string]float64{},
	}
	if id, ok := p["_server_id"].(string); ok {
		e.ServerID = id
	}
	if values, ok := p["values"].(map[string]interface{}); ok {
		for k, v := range values {
			e.Values[k] = num(v)
		}
	}
	return e
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

func num(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func strSlice(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
