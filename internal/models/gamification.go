package models

// GamificationState is derived on every read from the user's completion
// history. Nothing here is persisted.
type GamificationState struct {
	CompletionCount      int    `json:"completion_count"`
	Level                int    `json:"level"`
	XPInLevel            int    `json:"xp_in_level"`
	XPPerLevel           int    `json:"xp_per_level"`
	CharacterTitle       string `json:"character_title"`
	CharacterDescription string `json:"character_description"`
	CurrentStreak        int    `json:"current_streak"`
	NextMilestone        int    `json:"next_milestone"`
	NextMilestoneText    string `json:"next_milestone_text"`
}
