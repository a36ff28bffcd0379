package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/virtual-visits-api/internal/application/survey"
	"github.com/virtual-visits-api/internal/domain"
)

// SurveyHandler stores post-call survey answers.
type SurveyHandler struct {
	svc survey.Service
}

func NewSurveyHandler(svc survey.Service) *SurveyHandler {
	return &SurveyHandler{svc: svc}
}

func (h *SurveyHandler) Store(w http.ResponseWriter, r *http.Request) {
	var req domain.SurveyResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, http.StatusBadRequest, []string{"invalid request body"})
		return
	}

	if errs := survey.ValidateRequest(req); len(errs) > 0 {
		writeErrors(w, http.StatusBadRequest, errs)
		return
	}

	if _, err := h.svc.Save(r.Context(), req); err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			writeErrors(w, http.StatusBadRequest, []string{"invalid survey result"})
			return
		}
		slog.Error("could not store survey result", "err", err)
		writeError(w, http.StatusInternalServerError, errUnknown)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Survey result saved"})
}
