package survey

import (
	"context"
	"fmt"
	"time"

	"github.com/virtual-visits-api/internal/domain"
	"github.com/virtual-visits-api/internal/pkg/id"
)

// Repository is the persistence capability for survey results.
type Repository interface {
	Put(ctx context.Context, s *domain.SurveyResult) error
}

type Service interface {
	Save(ctx context.Context, req domain.SurveyResultRequest) (*domain.SurveyResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ValidateRequest returns caller-facing messages for every missing or
// mistyped field. An empty slice means the request is acceptable.
func ValidateRequest(req domain.SurveyResultRequest) []string {
	var errs []string
	if req.CallID == "" {
		errs = append(errs, "callId must be present")
	}
	if req.ACSUserID == "" {
		errs = append(errs, "acsUserId must be present")
	}
	if req.MeetingLink == "" {
		errs = append(errs, "meetingLink must be present")
	}
	switch req.Response.(type) {
	case nil:
		errs = append(errs, "response must be present")
	case bool, float64, string:
		// boolean, number or string depending on the configured poll type
	default:
		errs = append(errs, "response type must be one of boolean, string, number")
	}
	return errs
}

func (s *service) Save(ctx context.Context, req domain.SurveyResultRequest) (*domain.SurveyResult, error) {
	if errs := ValidateRequest(req); len(errs) > 0 {
		return nil, fmt.Errorf("invalid survey result: %w", domain.ErrBadRequest)
	}
	result := &domain.SurveyResult{
		SurveyID:    id.New(),
		CallID:      req.CallID,
		ACSUserID:   req.ACSUserID,
		MeetingLink: req.MeetingLink,
		Response:    req.Response,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, result); err != nil {
		return nil, fmt.Errorf("save survey result: %v: %w", err, domain.ErrStoreUnavailable)
	}
	return result, nil
}
