package otp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/virtual-visits-api/internal/config"
	"github.com/virtual-visits-api/internal/domain"
	"github.com/virtual-visits-api/internal/pkg/identity"
	"github.com/virtual-visits-api/internal/pkg/otpcode"
)

// Store is the persistence capability the OTP lifecycle needs. Get reports
// domain.ErrNotFound for a missing subject; Save reports
// domain.ErrRevisionConflict when the record changed since it was read.
type Store interface {
	Get(ctx context.Context, subjectID string) (*domain.OTPRecord, error)
	Replace(ctx context.Context, rec *domain.OTPRecord) error
	Save(ctx context.Context, rec *domain.OTPRecord) error
}

type Service interface {
	Issue(ctx context.Context, email string) error
	Validate(ctx context.Context, email, code string) (domain.OTPOutcome, error)
}

// conflictRetries bounds the read-decide-write loop under concurrent
// validation attempts for the same subject.
const conflictRetries = 3

type service struct {
	store  Store
	policy config.OTPPolicy
	now    func() time.Time
}

// NewService builds the issuance/validation service. now is injected so
// expiry-boundary behavior is deterministic under test; production callers
// pass time.Now.
func NewService(store Store, policy config.OTPPolicy, now func() time.Time) Service {
	return &service{store: store, policy: policy, now: now}
}

// Issue creates a fresh OTP generation for the contact address, overwriting
// any record a prior issuance left behind. At most one live code per subject.
func (s *service) Issue(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("email is required: %w", domain.ErrBadRequest)
	}
	code, err := otpcode.New(s.policy.CodeLength)
	if err != nil {
		return err
	}
	rec := &domain.OTPRecord{
		SubjectID: identity.SubjectID(email),
		Code:      code,
		ExpiresAt: s.now().Add(s.policy.Validity).Unix(),
		Attempts:  0,
		Used:      false,
		Revision:  1,
	}
	if err := s.store.Replace(ctx, rec); err != nil {
		return storeErr("save otp record", err)
	}
	return nil
}

// Validate runs the policy engine against the stored record and reports one
// of the five outcomes. Store failures are returned as errors, never folded
// into an outcome. Each comparison attempt is durably counted before the
// result is revealed.
func (s *service) Validate(ctx context.Context, email, code string) (domain.OTPOutcome, error) {
	subjectID := identity.SubjectID(email)

	var lastErr error
	for i := 0; i < conflictRetries; i++ {
		rec, err := s.store.Get(ctx, subjectID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.OutcomeNotFoundOrExpired, nil
			}
			return domain.OutcomeUnknown, storeErr("read otp record", err)
		}

		d := Evaluate(rec, code, s.now(), s.policy.MaxAttempts)
		if d.Record == nil {
			return d.Outcome, nil
		}

		if err := s.store.Save(ctx, d.Record); err != nil {
			if errors.Is(err, domain.ErrRevisionConflict) {
				slog.Debug("otp validation lost a write race, retrying", "subject_id", subjectID, "try", i+1)
				lastErr = err
				continue
			}
			return domain.OutcomeUnknown, storeErr("save otp record", err)
		}
		return d.Outcome, nil
	}
	return domain.OutcomeUnknown, storeErr("save otp record", lastErr)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, domain.ErrStoreUnavailable)
}
