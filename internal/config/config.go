package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	OTP OTPPolicy

	AllowedOrigins []string // CORS allowed origins

	Client ClientConfig
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	OTPs    string
	Surveys string
}

// OTPPolicy holds the tunables of the OTP lifecycle. Passed explicitly into
// the issuance/validation services so the policy engine stays testable with
// fake stores and fixed clocks.
type OTPPolicy struct {
	MaxAttempts int
	Validity    time.Duration
	CodeLength  int
}

// ClientConfig is the branding/feature block served to the web client.
type ClientConfig struct {
	CompanyName        string
	ChatEnabled        bool
	ScreenShareEnabled bool
	BookingsURL        string
	LogoURL            string
	ColorPalette       string
	WaitingTitle       string
	WaitingSubtitle    string
	SurveyType         string // "onequestionpoll" or empty to disable post-call survey
	SurveyTitle        string
	SurveyPrompt       string
	SurveyPollType     string // "likeOrDislike" | "rating" | "text"
	SurveyPlaceholder  string
	SurveySaveText     string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "8080"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			OTPs:    getEnv("DYNAMO_TABLE_OTPS", "otps"),
			Surveys: getEnv("DYNAMO_TABLE_SURVEYS", "survey_results"),
		},

		OTP: OTPPolicy{
			MaxAttempts: getEnvInt("OTP_MAX_ATTEMPTS", 5),
			Validity:    time.Duration(getEnvInt("OTP_VALIDITY_DAYS", 7)) * 24 * time.Hour,
			CodeLength:  getEnvInt("OTP_CODE_LENGTH", 12),
		},

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),

		Client: ClientConfig{
			CompanyName:        getEnv("VV_COMPANY_NAME", "Lamna Healthcare"),
			ChatEnabled:        getEnvBool("VV_CHAT_ENABLED", true),
			ScreenShareEnabled: getEnvBool("VV_SCREENSHARE_ENABLED", true),
			BookingsURL:        getEnv("VV_MICROSOFT_BOOKINGS_URL", ""),
			LogoURL:            getEnv("VV_LOGO_URL", ""),
			ColorPalette:       getEnv("VV_COLOR_PALETTE", "#0078d4"),
			WaitingTitle:       getEnv("VV_WAITING_TITLE", "Thank you for choosing Lamna Healthcare"),
			WaitingSubtitle:    getEnv("VV_WAITING_SUBTITLE", "Please wait for the host to join the call."),
			SurveyType:         getEnv("VV_POSTCALL_SURVEY_TYPE", ""),
			SurveyTitle:        getEnv("VV_POSTCALL_SURVEY_ONEQUESTIONPOLL_TITLE", "Tell us how we did!"),
			SurveyPrompt:       getEnv("VV_POSTCALL_SURVEY_ONEQUESTIONPOLL_PROMPT", "How satisfied were you with your visit?"),
			SurveyPollType:     getEnv("VV_POSTCALL_SURVEY_ONEQUESTIONPOLL_TYPE", "rating"),
			SurveyPlaceholder:  getEnv("VV_POSTCALL_SURVEY_ONEQUESTIONPOLL_ANSWER_PLACEHOLDER", ""),
			SurveySaveText:     getEnv("VV_POSTCALL_SURVEY_ONEQUESTIONPOLL_SAVE_BUTTON_TEXT", "Continue"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
