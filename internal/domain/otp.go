package domain

// OTPRecord is the single persistent OTP entity, one live record per subject.
// PK: subject_id (one-way hash of the contact address — the raw address is
// never stored). ExpiresAt is a Unix timestamp also used as DynamoDB TTL.
// Revision supports conditional writes: every save bumps it, and validation
// writes are conditioned on the revision that was read.
type OTPRecord struct {
	SubjectID string `json:"subject_id" dynamodbav:"subject_id"`
	Code      string `json:"-" dynamodbav:"code"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"`
	Attempts  int    `json:"attempts" dynamodbav:"attempts"`
	Used      bool   `json:"used" dynamodbav:"used"`
	Revision  int64  `json:"revision" dynamodbav:"revision"`
}

// OTPOutcome is the five-way result of a validation attempt. Outcomes are
// values, not errors — store failures are reported separately.
type OTPOutcome int

const (
	// OutcomeUnknown is the zero value, returned alongside store errors. It
	// never reaches a caller as a validation verdict.
	OutcomeUnknown OTPOutcome = iota
	OutcomeSuccess
	OutcomeInvalidCode
	OutcomeLockedOut
	OutcomeAlreadyUsed
	OutcomeNotFoundOrExpired
)

func (o OTPOutcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalidCode:
		return "invalid_code"
	case OutcomeLockedOut:
		return "locked_out"
	case OutcomeAlreadyUsed:
		return "already_used"
	case OutcomeNotFoundOrExpired:
		return "not_found_or_expired"
	default:
		return "unknown"
	}
}

type GenerateOTPRequest struct {
	Email string `json:"email"`
}

type ValidateOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
