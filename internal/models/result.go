package models

// Pillar levels derived from the score percentage.
const (
	LevelExcelente = "Excelente"
	LevelAlto      = "Alto"
	LevelMedio     = "Medio"
	LevelBajo      = "Bajo"
)

type PillarResult struct {
	Name       string     `bson:"name" json:"name"`
	Icon       string     `bson:"icon" json:"icon"`
	Score      int        `bson:"score" json:"score"`
	MaxScore   int        `bson:"max_score" json:"max_score"`
	Percentage float64    `bson:"percentage" json:"percentage"`
	Level      string     `bson:"level" json:"level"`
	Exercises  []Exercise `bson:"exercises" json:"exercises"`
}

type AssessmentResult struct {
	SessionID         string         `bson:"session_id" json:"session_id"`
	UserID            string         `bson:"user_id" json:"user_id"`
	Pillars           []PillarResult `bson:"pillars" json:"pillars"`
	OverallPercentage int            `bson:"overall_percentage" json:"overall_percentage"`
}
