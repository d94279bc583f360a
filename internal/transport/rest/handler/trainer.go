package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pddtools/internal/model"
	"pddtools/internal/service"
	"pddtools/internal/transport/rest/middleware"
)

// TrainerHandler handles trainer session endpoints
type TrainerHandler struct {
	trainerSvc *service.TrainerService
}

// NewTrainerHandler creates a new trainer handler
func NewTrainerHandler(trainerSvc *service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerSvc: trainerSvc}
}

// List handles GET /v1/trainers
func (h *TrainerHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"trainers": h.trainerSvc.Trainers(),
	})
}

// Start handles POST /v1/trainers/{trainerId}/sessions
func (h *TrainerHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	trainerID := mux.Vars(r)["trainerId"]

	view, err := h.trainerSvc.Start(r.Context(), userID, trainerID)
	if err != nil {
		writeTrainerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Current handles GET /v1/trainers/{trainerId}/sessions/current
func (h *TrainerHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	trainerID := mux.Vars(r)["trainerId"]

	view, err := h.trainerSvc.Current(r.Context(), userID, trainerID)
	if err != nil {
		writeTrainerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// AnswerRequest is the request body for answering a step
type AnswerRequest struct {
	StepID string            `json:"stepId"`
	Value  model.AnswerValue `json:"value"`
}

// Answer handles POST /v1/trainers/{trainerId}/sessions/current/answers
func (h *TrainerHandler) Answer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	trainerID := mux.Vars(r)["trainerId"]

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.trainerSvc.Answer(r.Context(), userID, trainerID, req.StepID, req.Value)
	if err != nil {
		writeTrainerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Skip handles POST /v1/trainers/{trainerId}/sessions/current/skip
func (h *TrainerHandler) Skip(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	trainerID := mux.Vars(r)["trainerId"]

	view, err := h.trainerSvc.Skip(r.Context(), userID, trainerID)
	if err != nil {
		writeTrainerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Stats handles GET /v1/trainers/stats
func (h *TrainerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	stats, err := h.trainerSvc.Stats(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"stats": stats})
}

func writeTrainerError(w http.ResponseWriter, err error) {
	switch err {
	case service.ErrUnknownTrainer:
		writeError(w, http.StatusNotFound, err.Error())
	case service.ErrNoSession:
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
