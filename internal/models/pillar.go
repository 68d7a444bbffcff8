package models

// Evidence types an exercise can ask for. EvidenceAny accepts any of the
// other three.
const (
	EvidenceText  = "text"
	EvidenceAudio = "audio"
	EvidenceVideo = "video"
	EvidenceAny   = "any"
)

// Exercise is a practical activity attached to a pillar. Completing one
// requires evidence of the declared type.
type Exercise struct {
	ID           string   `bson:"id" json:"id"`
	Title        string   `bson:"title" json:"title"`
	Description  string   `bson:"description" json:"description"`
	EvidenceType string   `bson:"evidence_type" json:"evidence_type"`
	MediaURL     string   `bson:"media_url,omitempty" json:"media_url,omitempty"`
	Steps        []string `bson:"steps,omitempty" json:"steps,omitempty"`
}

// Pillar is one of the five emotional competencies: a block of diagnostic
// questions plus the exercises that train it.
type Pillar struct {
	Name      string     `bson:"name" json:"name"`
	Icon      string     `bson:"icon" json:"icon"`
	Questions []string   `bson:"questions" json:"questions"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}

func (p Pillar) QuestionCount() int {
	return len(p.Questions)
}

// MaxScore is the pillar's score ceiling: every question answered with the
// top Likert value.
func (p Pillar) MaxScore() int {
	return len(p.Questions) * LikertMax
}
