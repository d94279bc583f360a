package handler

import (
	"encoding/json"
	"net/http"

	"pddtools/internal/model"
	"pddtools/internal/service"
	"pddtools/internal/transport/rest/middleware"
)

// BarrierHandler handles barrier bot endpoints. The same dialogue is
// also reachable over WebSocket; REST covers clients without one.
type BarrierHandler struct {
	barrierSvc *service.BarrierService
}

// NewBarrierHandler creates a new barrier handler
func NewBarrierHandler(barrierSvc *service.BarrierService) *BarrierHandler {
	return &BarrierHandler{barrierSvc: barrierSvc}
}

// Start handles POST /v1/barrier/start
func (h *BarrierHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	turn, err := h.barrierSvc.Start(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, turn)
}

// Current handles GET /v1/barrier/current
func (h *BarrierHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	turn, err := h.barrierSvc.Current(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, turn)
}

// BarrierAnswerRequest is the request body for one dialogue answer
type BarrierAnswerRequest struct {
	Value model.AnswerValue `json:"value"`
}

// Answer handles POST /v1/barrier/answers
func (h *BarrierHandler) Answer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req BarrierAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	turn, err := h.barrierSvc.Answer(r.Context(), userID, req.Value)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, turn)
}
