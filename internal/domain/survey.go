package domain

import "time"

// SurveyResult is one post-call survey answer. Response is free-form:
// the client may send a boolean, a number, or a string depending on the
// configured survey type.
type SurveyResult struct {
	SurveyID    string      `json:"id" dynamodbav:"survey_id"`
	CallID      string      `json:"callId" dynamodbav:"call_id"`
	ACSUserID   string      `json:"acsUserId" dynamodbav:"acs_user_id"`
	MeetingLink string      `json:"meetingLink" dynamodbav:"meeting_link"`
	Response    interface{} `json:"response" dynamodbav:"response"`
	CreatedAt   time.Time   `json:"created" dynamodbav:"created_at"`
}

type SurveyResultRequest struct {
	CallID      string      `json:"callId"`
	ACSUserID   string      `json:"acsUserId"`
	MeetingLink string      `json:"meetingLink"`
	Response    interface{} `json:"response"`
}
