package models

import "time"

// Session phases. A session only moves forward (NotStarted -> InProgress ->
// Completed) except through an explicit restart.
const (
	PhaseNotStarted = "not_started"
	PhaseInProgress = "in_progress"
	PhaseCompleted  = "completed"
)

type QuizSession struct {
	ID              string         `bson:"_id,omitempty" json:"id"`
	UserID          string         `bson:"user_id" json:"user_id"`
	SessionToken    string         `bson:"session_token" json:"session_token"`
	Phase           string         `bson:"phase" json:"phase"`
	CurrentQuestion int            `bson:"current_question" json:"current_question"`
	Answers         AnswerSet      `bson:"answers" json:"answers"`
	StartTime       time.Time      `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime         time.Time      `bson:"end_time,omitempty" json:"end_time,omitempty"`
	UpdatedAt       time.Time      `bson:"updated_at" json:"updated_at"`
}
