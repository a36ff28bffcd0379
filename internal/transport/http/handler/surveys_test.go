package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/virtual-visits-api/internal/domain"
)

type mockSurveySvc struct{ mock.Mock }

func (m *mockSurveySvc) Save(ctx context.Context, req domain.SurveyResultRequest) (*domain.SurveyResult, error) {
	args := m.Called(ctx, req)
	if s, _ := args.Get(0).(*domain.SurveyResult); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSurveyStore_OK(t *testing.T) {
	svc := &mockSurveySvc{}
	svc.On("Save", mock.Anything, mock.Anything).Return(&domain.SurveyResult{SurveyID: "01HZX"}, nil)

	rec := postJSON(t, NewSurveyHandler(svc).Store, map[string]interface{}{
		"callId":      "call-1",
		"acsUserId":   "acs-1",
		"meetingLink": "https://teams.example/visit",
		"response":    5,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Survey result saved", decodeBody(t, rec)["message"])
}

func TestSurveyStore_ValidationErrors(t *testing.T) {
	svc := &mockSurveySvc{}

	rec := postJSON(t, NewSurveyHandler(svc).Store, map[string]interface{}{"callId": "call-1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs := decodeBody(t, rec)["errors"]
	assert.Contains(t, errs, "acsUserId must be present")
	assert.Contains(t, errs, "meetingLink must be present")
	assert.Contains(t, errs, "response must be present")
	svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSurveyStore_StoreFailure(t *testing.T) {
	svc := &mockSurveySvc{}
	svc.On("Save", mock.Anything, mock.Anything).Return(nil, domain.ErrStoreUnavailable)

	rec := postJSON(t, NewSurveyHandler(svc).Store, map[string]interface{}{
		"callId":      "call-1",
		"acsUserId":   "acs-1",
		"meetingLink": "https://teams.example/visit",
		"response":    true,
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
