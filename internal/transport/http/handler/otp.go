package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/virtual-visits-api/internal/application/otp"
	"github.com/virtual-visits-api/internal/domain"
	"github.com/virtual-visits-api/internal/pkg/validate"
)

const errUnknown = "An unknown error occurred"

// OTPHandler exposes the OTP issuance and validation endpoints.
type OTPHandler struct {
	svc otp.Service
}

func NewOTPHandler(svc otp.Service) *OTPHandler {
	return &OTPHandler{svc: svc}
}

// Generate handles POST /api/generateOTP. Validation failures are reported as
// an errors array; the response never includes the code itself — delivery to
// the visitor happens out of band.
func (h *OTPHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, http.StatusBadRequest, []string{"invalid request body"})
		return
	}

	if errs := validateGenerateRequest(req); len(errs) > 0 {
		writeErrors(w, http.StatusBadRequest, errs)
		return
	}

	if err := h.svc.Issue(r.Context(), req.Email); err != nil {
		slog.Error("could not issue OTP", "err", err)
		writeError(w, http.StatusInternalServerError, errUnknown)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "OTP generated successfully:"})
}

// Validate handles POST /api/validateOTP, mapping each policy outcome to its
// own status and message. Store failures are never disguised as a validation
// verdict.
func (h *OTPHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req domain.ValidateOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and OTP are required")
		return
	}
	if req.Email == "" || req.OTP == "" {
		writeError(w, http.StatusBadRequest, "Email and OTP are required")
		return
	}

	outcome, err := h.svc.Validate(r.Context(), req.Email, req.OTP)
	if err != nil {
		slog.Error("could not validate OTP", "err", err)
		writeError(w, http.StatusInternalServerError, errUnknown)
		return
	}

	switch outcome {
	case domain.OutcomeSuccess:
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "OTP validated successfully"})
	case domain.OutcomeInvalidCode:
		writeError(w, http.StatusBadRequest, "Invalid OTP")
	case domain.OutcomeLockedOut:
		writeError(w, http.StatusTooManyRequests, "Too many validation attempts, contact Support for new OTP")
	case domain.OutcomeNotFoundOrExpired:
		writeError(w, http.StatusNotFound, "No OTP found or OTP expired")
	case domain.OutcomeAlreadyUsed:
		writeError(w, http.StatusBadRequest, "This OTP has already been used.")
	default:
		writeError(w, http.StatusInternalServerError, errUnknown)
	}
}

func validateGenerateRequest(req domain.GenerateOTPRequest) []string {
	var errs []string
	if req.Email == "" {
		errs = append(errs, "email must be present")
	} else if !validate.Email(req.Email) {
		errs = append(errs, "email format is invalid")
	}
	return errs
}
