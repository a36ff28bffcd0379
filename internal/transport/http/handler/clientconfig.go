package handler

import (
	"net/http"

	"github.com/virtual-visits-api/internal/config"
)

// clientConfigResponse mirrors the shape the web client consumes.
type clientConfigResponse struct {
	CompanyName          string          `json:"companyName"`
	ChatEnabled          bool            `json:"chatEnabled"`
	ScreenShareEnabled   bool            `json:"screenShareEnabled"`
	MicrosoftBookingsURL string          `json:"microsoftBookingsUrl"`
	LogoURL              string          `json:"logoUrl"`
	ColorPalette         string          `json:"colorPalette"`
	WaitingTitle         string          `json:"waitingTitle"`
	WaitingSubtitle      string          `json:"waitingSubtitle"`
	PostCall             *postCallConfig `json:"postCall,omitempty"`
}

type postCallConfig struct {
	Survey postCallSurvey `json:"survey"`
}

type postCallSurvey struct {
	Type    string          `json:"type"`
	Options oneQuestionPoll `json:"options"`
}

type oneQuestionPoll struct {
	Title             string `json:"title,omitempty"`
	Prompt            string `json:"prompt"`
	PollType          string `json:"pollType"`
	AnswerPlaceholder string `json:"answerPlaceholder,omitempty"`
	SaveButtonText    string `json:"saveButtonText"`
}

// ClientConfigHandler serves the branding/feature config the web client
// renders against. No secrets ever go through here.
type ClientConfigHandler struct {
	cfg config.ClientConfig
}

func NewClientConfigHandler(cfg config.ClientConfig) *ClientConfigHandler {
	return &ClientConfigHandler{cfg: cfg}
}

func (h *ClientConfigHandler) Get(w http.ResponseWriter, _ *http.Request) {
	resp := clientConfigResponse{
		CompanyName:          h.cfg.CompanyName,
		ChatEnabled:          h.cfg.ChatEnabled,
		ScreenShareEnabled:   h.cfg.ScreenShareEnabled,
		MicrosoftBookingsURL: h.cfg.BookingsURL,
		LogoURL:              h.cfg.LogoURL,
		ColorPalette:         h.cfg.ColorPalette,
		WaitingTitle:         h.cfg.WaitingTitle,
		WaitingSubtitle:      h.cfg.WaitingSubtitle,
	}
	if h.cfg.SurveyType != "" {
		resp.PostCall = &postCallConfig{
			Survey: postCallSurvey{
				Type: h.cfg.SurveyType,
				Options: oneQuestionPoll{
					Title:             h.cfg.SurveyTitle,
					Prompt:            h.cfg.SurveyPrompt,
					PollType:          h.cfg.SurveyPollType,
					AnswerPlaceholder: h.cfg.SurveyPlaceholder,
					SaveButtonText:    h.cfg.SurveySaveText,
				},
			},
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
