package otp

import (
	"time"

	"github.com/virtual-visits-api/internal/domain"
)

// Decision is the result of evaluating one validation attempt. A non-nil
// Record must be persisted before the outcome is revealed to the caller, so a
// crash or retry between comparison and response can never hand back an
// unconsumed attempt.
type Decision struct {
	Outcome domain.OTPOutcome
	Record  *domain.OTPRecord
}

// Evaluate applies the validation state machine to the record read from the
// store. Pure function: callers own reading the record and persisting the
// returned mutation, which keeps the decision logic independent of how write
// conflicts are handled.
//
// An expired record is treated exactly like a missing one, and the attempt
// ceiling is checked on the pre-increment value: the (maxAttempts+1)-th
// attempt is always locked out, never compared.
func Evaluate(rec *domain.OTPRecord, submitted string, now time.Time, maxAttempts int) Decision {
	if rec == nil || rec.ExpiresAt <= now.Unix() {
		return Decision{Outcome: domain.OutcomeNotFoundOrExpired}
	}
	if rec.Used {
		return Decision{Outcome: domain.OutcomeAlreadyUsed}
	}
	if rec.Attempts >= maxAttempts {
		return Decision{Outcome: domain.OutcomeLockedOut}
	}

	next := *rec
	next.Attempts++
	if submitted == rec.Code {
		next.Used = true
		return Decision{Outcome: domain.OutcomeSuccess, Record: &next}
	}
	return Decision{Outcome: domain.OutcomeInvalidCode, Record: &next}
}
