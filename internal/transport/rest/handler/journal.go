package handler

import (
	"encoding/json"
	"net/http"

	"pddtools/internal/journal"
	"pddtools/internal/model"
	"pddtools/internal/service"
	"pddtools/internal/transport/rest/middleware"
)

// JournalHandler handles diary and progress endpoints
type JournalHandler struct {
	journalSvc *service.JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalSvc *service.JournalService) *JournalHandler {
	return &JournalHandler{journalSvc: journalSvc}
}

// DiaryTemplates handles GET /v1/diary/templates
func (h *JournalHandler) DiaryTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.journalSvc.DiaryTemplates(r.Context()))
}

// SetDiaryTemplates handles PUT /v1/admin/diary/templates
func (h *JournalHandler) SetDiaryTemplates(w http.ResponseWriter, r *http.Request) {
	var tpl journal.DiaryTemplates
	if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.journalSvc.SetDiaryTemplates(r.Context(), &tpl); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// AnalyzeDiary handles POST /v1/diary/entries
func (h *JournalHandler) AnalyzeDiary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var entry model.DiaryEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analyzed, result, err := h.journalSvc.AnalyzeDiary(r.Context(), userID, entry)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entry":     analyzed,
		"analysis":  result.Analysis,
		"questions": result.Questions,
	})
}

// SupportRequest carries the reflection answers for the closing line
type SupportRequest struct {
	Entry   model.DiaryEntry `json:"entry"`
	Answers []string         `json:"answers"`
}

// DiarySupport handles POST /v1/diary/support
func (h *JournalHandler) DiarySupport(w http.ResponseWriter, r *http.Request) {
	var req SupportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"supportText": h.journalSvc.DiarySupport(req.Answers, req.Entry),
	})
}

// ProgressTemplates handles GET /v1/progress/templates
func (h *JournalHandler) ProgressTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.journalSvc.ProgressTemplates(r.Context()))
}

// SetProgressTemplates handles PUT /v1/admin/progress/templates
func (h *JournalHandler) SetProgressTemplates(w http.ResponseWriter, r *http.Request) {
	var tpl journal.ProgressTemplates
	if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.journalSvc.SetProgressTemplates(r.Context(), &tpl); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// ProgressCheckIn handles POST /v1/progress/entries
func (h *JournalHandler) ProgressCheckIn(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var entry model.ProgressEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.journalSvc.ProgressCheckIn(r.Context(), userID, entry)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": text})
}
