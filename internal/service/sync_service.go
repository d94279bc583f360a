package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pddtools/internal/model"
	"pddtools/internal/repository"
)

// Per-tool history limits. Zero means unlimited.
var toolLimits = map[model.ToolType]int{
	model.ToolDiary:      0,
	model.ToolBarrierBot: 6,
	model.ToolPsychBot:   6,
	model.ToolCareerTest: 6,
	model.ToolIncomeBot:  6,
	model.ToolPlanBot:    6,
	model.ToolProgress:   6,
}

const defaultToolLimit = 6

// SyncService reconciles tool sessions between devices. Sessions are
// matched by server ID when present, otherwise by content
// fingerprint, so replays from an offline device never duplicate.
type SyncService struct {
	sessions repository.ToolSessionRepo
}

// NewSyncService creates a new sync service
func NewSyncService(sessions repository.ToolSessionRepo) *SyncService {
	return &SyncService{sessions: sessions}
}

// Fingerprint derives a stable identity for a session payload: the
// date plus the first four sorted keys' values. Underscore-prefixed
// keys are transport metadata and excluded. Values are truncated to
// 50 runes; lists contribute their first three elements.
func Fingerprint(data map[string]interface{}) string {
	date, _ := data["date"].(string)

	keys := make([]string, 0, len(data))
	for k := range data {
		if !strings.HasPrefix(k, "_") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if len(keys) > 4 {
		keys = keys[:4]
	}

	parts := []string{date}
	for _, k := range keys {
		parts = append(parts, truncate(stringify(data[k]), 50))
	}
	return strings.Join(parts, "|")
}

func stringify(v interface{}) string {
	if list, ok := v.([]interface{}); ok {
		if len(list) > 3 {
			list = list[:3]
		}
		elems := make([]string, len(list))
		for i, e := range list {
			elems[i] = fmt.Sprint(e)
		}
		return strings.Join(elems, ",")
	}
	return fmt.Sprint(v)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}

func limitFor(tool model.ToolType) int {
	if limit, ok := toolLimits[tool]; ok {
		return limit
	}
	return defaultToolLimit
}

// Load returns the user's stored sessions for a tool, oldest first,
// with the server ID attached to each payload.
func (s *SyncService) Load(ctx context.Context, userID string, tool model.ToolType) ([]map[string]interface{}, error) {
	stored, err := s.sessions.ListByUserTool(ctx, userID, tool)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	out := make([]map[string]interface{}, 0, len(stored))
	for _, sess := range stored {
		out = append(out, withServerID(sess))
	}
	return out, nil
}

// Save stores one new session and trims the user's history to the
// tool's limit. Returns the new session's ID.
func (s *SyncService) Save(ctx context.Context, userID string, tool model.ToolType, data map[string]interface{}) (string, error) {
	session := &model.ToolSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Tool:      tool,
		Data:      stripMeta(data),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Insert(ctx, session); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	if limit := limitFor(tool); limit > 0 {
		stored, err := s.sessions.ListByUserTool(ctx, userID, tool)
		if err != nil {
			return "", fmt.Errorf("failed to list sessions: %w", err)
		}
		if excess := len(stored) - limit; excess > 0 {
			ids := make([]string, 0, excess)
			for _, old := range stored[:excess] {
				ids = append(ids, old.ID)
			}
			if err := s.sessions.DeleteByIDs(ctx, ids); err != nil {
				return "", fmt.Errorf("failed to trim sessions: %w", err)
			}
		}
	}
	return session.ID, nil
}

// Sync merges a device's local sessions into the server set and
// returns the canonical list, oldest first and trimmed to the tool's
// limit, plus how many local sessions were new.
func (s *SyncService) Sync(ctx context.Context, userID string, tool model.ToolType, local []map[string]interface{}) (*model.SyncResponse, error) {
	stored, err := s.sessions.ListByUserTool(ctx, userID, tool)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	serverIDs := make(map[string]bool, len(stored))
	fingerprints := make(map[string]bool, len(stored))
	merged := make([]map[string]interface{}, 0, len(stored)+len(local))
	mergedIDs := make([]string, 0, len(stored)+len(local))
	for _, sess := range stored {
		serverIDs[sess.ID] = true
		fingerprints[Fingerprint(sess.Data)] = true
		merged = append(merged, withServerID(sess))
		mergedIDs = append(mergedIDs, sess.ID)
	}

	synced := 0
	for _, payload := range local {
		if id, ok := payload["_server_id"].(string); ok && serverIDs[id] {
			continue
		}
		clean := stripMeta(payload)
		fp := Fingerprint(clean)
		if fingerprints[fp] {
			continue
		}

		session := &model.ToolSession{
			ID:        uuid.NewString(),
			UserID:    userID,
			Tool:      tool,
			Data:      clean,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.sessions.Insert(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
		fingerprints[fp] = true
		merged = append(merged, withServerID(session))
		mergedIDs = append(mergedIDs, session.ID)
		synced++
	}

	if limit := limitFor(tool); limit > 0 && len(merged) > limit {
		excess := len(merged) - limit
		if err := s.sessions.DeleteByIDs(ctx, mergedIDs[:excess]); err != nil {
			return nil, fmt.Errorf("failed to trim sessions: %w", err)
		}
		merged = merged[excess:]
	}

	return &model.SyncResponse{Sessions: merged, Synced: synced}, nil
}

func withServerID(sess *model.ToolSession) map[string]interface{} {
	out := make(map[string]interface{}, len(sess.Data)+1)
	for k, v := range sess.Data {
		out[k] = v
	}
	out["_server_id"] = sess.ID
	return out
}

func stripMeta(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		if strings.HasPrefix(k, "_") {
			continue
		}
		out[k] = v
	}
	return out
}
