package models

import "time"

// CompletionRecord is an append-only log entry: one user finished one
// exercise and left evidence behind. Records are never updated or deleted.
type CompletionRecord struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	ExerciseID      string    `bson:"exercise_id" json:"exercise_id"`
	ExerciseTitle   string    `bson:"exercise_title" json:"exercise_title"`
	Pillar          string    `bson:"pillar" json:"pillar"`
	EvidenceType    string    `bson:"evidence_type" json:"evidence_type"`
	EvidenceText    string    `bson:"evidence_text,omitempty" json:"evidence_text,omitempty"`
	EvidenceFileURL string    `bson:"evidence_file_url,omitempty" json:"evidence_file_url,omitempty"`
	Reflection      string    `bson:"reflection,omitempty" json:"reflection,omitempty"`
	CompletedAt     time.Time `bson:"completed_at" json:"completed_at"`
}
