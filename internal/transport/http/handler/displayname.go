package handler

import (
	"encoding/json"
	"net/http"

	"github.com/virtual-visits-api/internal/pkg/displayname"
)

// DisplayNameHandler validates visitor display names before they enter a call.
type DisplayNameHandler struct{}

func NewDisplayNameHandler() *DisplayNameHandler { return &DisplayNameHandler{} }

func (h *DisplayNameHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DisplayName == "" {
		writeErrors(w, http.StatusBadRequest, []string{"Display name is required."})
		return
	}

	if errs := displayname.Validate(req.DisplayName); len(errs) > 0 {
		writeErrors(w, http.StatusBadRequest, errs)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Display name is valid."})
}
