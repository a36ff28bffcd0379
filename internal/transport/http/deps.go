package http

import (
	"github.com/virtual-visits-api/internal/application/otp"
	"github.com/virtual-visits-api/internal/application/survey"
)

// Deps holds the stores the router wires into services. Expressed as the
// application-layer interfaces rather than concrete dynamo types so the
// router can be exercised against fakes.
type Deps struct {
	OTPStore   otp.Store
	SurveyRepo survey.Repository
}
