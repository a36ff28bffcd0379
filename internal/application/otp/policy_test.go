package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/virtual-visits-api/internal/domain"
)

var policyNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func pendingRecord(code string) *domain.OTPRecord {
	return &domain.OTPRecord{
		SubjectID: "subject",
		Code:      code,
		ExpiresAt: policyNow.Add(7 * 24 * time.Hour).Unix(),
		Revision:  1,
	}
}

func TestEvaluate_NilRecord(t *testing.T) {
	d := Evaluate(nil, "whatever", policyNow, 5)
	assert.Equal(t, domain.OutcomeNotFoundOrExpired, d.Outcome)
	assert.Nil(t, d.Record)
}

func TestEvaluate_ExpiredExactlyAtBoundary(t *testing.T) {
	rec := pendingRecord("CODE")
	rec.ExpiresAt = policyNow.Unix() // invalid strictly at/after this instant

	d := Evaluate(rec, "CODE", policyNow, 5)
	assert.Equal(t, domain.OutcomeNotFoundOrExpired, d.Outcome)
	assert.Nil(t, d.Record, "an expired record is never mutated")
}

func TestEvaluate_ExpiryWinsOverCorrectCode(t *testing.T) {
	rec := pendingRecord("CODE")
	rec.ExpiresAt = policyNow.Add(-time.Hour).Unix()

	d := Evaluate(rec, "CODE", policyNow, 5)
	assert.Equal(t, domain.OutcomeNotFoundOrExpired, d.Outcome)
}

func TestEvaluate_UsedBeforeAttemptCeiling(t *testing.T) {
	rec := pendingRecord("CODE")
	rec.Used = true
	rec.Attempts = 5

	d := Evaluate(rec, "CODE", policyNow, 5)
	assert.Equal(t, domain.OutcomeAlreadyUsed, d.Outcome)
	assert.Nil(t, d.Record, "a consumed record is never mutated")
}

func TestEvaluate_LockedOutWithoutFurtherIncrement(t *testing.T) {
	rec := pendingRecord("CODE")
	rec.Attempts = 5

	d := Evaluate(rec, "CODE", policyNow, 5)
	assert.Equal(t, domain.OutcomeLockedOut, d.Outcome)
	assert.Nil(t, d.Record, "the ceiling is a hard stop, not another increment")
}

func TestEvaluate_Match(t *testing.T) {
	rec := pendingRecord("CODE")
	rec.Attempts = 2

	d := Evaluate(rec, "CODE", policyNow, 5)
	assert.Equal(t, domain.OutcomeSuccess, d.Outcome)
	require.NotNil(t, d.Record)
	assert.Equal(t, 3, d.Record.Attempts, "a successful match still consumes an attempt")
	assert.True(t, d.Record.Used)
}

func TestEvaluate_MatchIsCaseSensitive(t *testing.T) {
	rec := pendingRecord("AbCdEf")

	d := Evaluate(rec, "abcdef", policyNow, 5)
	assert.Equal(t, domain.OutcomeInvalidCode, d.Outcome)
	require.NotNil(t, d.Record)
	assert.Equal(t, 1, d.Record.Attempts)
	assert.False(t, d.Record.Used)
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	rec := pendingRecord("CODE")

	_ = Evaluate(rec, "CODE", policyNow, 5)
	assert.Equal(t, 0, rec.Attempts)
	assert.False(t, rec.Used)
}

func TestEvaluate_FifthAttemptComparedSixthLockedOut(t *testing.T) {
	rec := pendingRecord("CODE")
	rec.Attempts = 4

	d := Evaluate(rec, "wrong", policyNow, 5)
	assert.Equal(t, domain.OutcomeInvalidCode, d.Outcome)
	require.NotNil(t, d.Record)
	assert.Equal(t, 5, d.Record.Attempts)

	d = Evaluate(d.Record, "CODE", policyNow, 5)
	assert.Equal(t, domain.OutcomeLockedOut, d.Outcome)
}
