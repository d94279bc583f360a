package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pddtools/internal/model"
	"pddtools/internal/service"
	"pddtools/internal/transport/rest/middleware"
)

// SyncHandler handles cross-device tool session sync
type SyncHandler struct {
	syncSvc *service.SyncService
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncSvc *service.SyncService) *SyncHandler {
	return &SyncHandler{syncSvc: syncSvc}
}

// Load handles GET /v1/sync/{toolType}
func (h *SyncHandler) Load(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	tool := model.ToolType(mux.Vars(r)["toolType"])

	sessions, err := h.syncSvc.Load(r.Context(), userID, tool)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

// SaveRequest is the request body for storing one session
type SaveRequest struct {
	SessionData map[string]interface{} `json:"sessionData"`
}

// Save handles POST /v1/sync/{toolType}
func (h *SyncHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	tool := model.ToolType(mux.Vars(r)["toolType"])

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.SessionData) == 0 {
		writeError(w, http.StatusBadRequest, "sessionData required")
		return
	}

	id, err := h.syncSvc.Save(r.Context(), userID, tool, req.SessionData)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "id": id})
}

// SyncRequestBody is the request body for a full merge
type SyncRequestBody struct {
	Sessions []map[string]interface{} `json:"sessions"`
}

// Sync handles POST /v1/sync/{toolType}/merge
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	tool := model.ToolType(mux.Vars(r)["toolType"])

	var req SyncRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.syncSvc.Sync(r.Context(), userID, tool, req.Sessions)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
