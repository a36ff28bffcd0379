package survey

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/virtual-visits-api/internal/domain"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Put(ctx context.Context, s *domain.SurveyResult) error {
	return m.Called(ctx, s).Error(0)
}

func validRequest() domain.SurveyResultRequest {
	return domain.SurveyResultRequest{
		CallID:      "call-1",
		ACSUserID:   "acs-user-1",
		MeetingLink: "https://teams.example/visit",
		Response:    float64(4),
	}
}

func TestValidateRequest_AllPresent(t *testing.T) {
	assert.Empty(t, ValidateRequest(validRequest()))
}

func TestValidateRequest_MissingFields(t *testing.T) {
	errs := ValidateRequest(domain.SurveyResultRequest{})
	assert.Contains(t, errs, "callId must be present")
	assert.Contains(t, errs, "acsUserId must be present")
	assert.Contains(t, errs, "meetingLink must be present")
	assert.Contains(t, errs, "response must be present")
}

func TestValidateRequest_ResponseTypes(t *testing.T) {
	for _, resp := range []interface{}{true, "great", float64(5)} {
		req := validRequest()
		req.Response = resp
		assert.Empty(t, ValidateRequest(req), "response %v should be accepted", resp)
	}

	req := validRequest()
	req.Response = map[string]interface{}{"nested": true}
	assert.Contains(t, ValidateRequest(req), "response type must be one of boolean, string, number")
}

func TestSave_PersistsWithGeneratedID(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Put", mock.Anything, mock.MatchedBy(func(s *domain.SurveyResult) bool {
		return s.SurveyID != "" && s.CallID == "call-1" && !s.CreatedAt.IsZero()
	})).Return(nil)

	svc := NewService(repo)
	result, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, result.SurveyID, 26) // ULID
	repo.AssertExpectations(t)
}

func TestSave_InvalidRequest(t *testing.T) {
	svc := NewService(&mockRepo{})
	_, err := svc.Save(context.Background(), domain.SurveyResultRequest{})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestSave_StoreFailure(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Put", mock.Anything, mock.Anything).Return(errors.New("dynamo down"))

	svc := NewService(repo)
	_, err := svc.Save(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
