package scoring

import (
	"math"

	"emoquiz-service/internal/models"
)

// RecommendedExercises caps how many exercises a pillar result carries.
const RecommendedExercises = 3

// LevelFor maps a score percentage onto its level label. Boundaries are
// inclusive: exactly 90 is Excelente, exactly 75 Alto, exactly 50 Medio.
func LevelFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return models.LevelExcelente
	case percentage >= 75:
		return models.LevelAlto
	case percentage >= 50:
		return models.LevelMedio
	default:
		return models.LevelBajo
	}
}

// Score computes one result per pillar in catalog order. An unanswered
// question contributes 0 to the pillar score but still counts in the
// denominator; that is the assessment's policy, not an oversight.
func Score(pillars []models.Pillar, answers models.AnswerSet) []models.PillarResult {
	results := make([]models.PillarResult, 0, len(pillars))
	start := 0
	for _, pillar := range pillars {
		score := 0
		for local := range pillar.Questions {
			if v, ok := answers.Get(start + local); ok {
				score += v
			}
		}
		maxScore := pillar.MaxScore()

		pct := 0.0
		if maxScore > 0 {
			pct = float64(score) / float64(maxScore) * 100
		}

		exercises := pillar.Exercises
		if len(exercises) > RecommendedExercises {
			exercises = exercises[:RecommendedExercises]
		}

		results = append(results, models.PillarResult{
			Name:       pillar.Name,
			Icon:       pillar.Icon,
			Score:      score,
			MaxScore:   maxScore,
			Percentage: pct,
			Level:      LevelFor(pct),
			Exercises:  exercises,
		})
		start += len(pillar.Questions)
	}
	return results
}

// OverallPercentage aggregates pillar results into the headline figure,
// rounded to the nearest integer. An empty or zero-question catalog is 0%.
func OverallPercentage(results []models.PillarResult) int {
	totalScore, totalMax := 0, 0
	for _, r := range results {
		totalScore += r.Score
		totalMax += r.MaxScore
	}
	if totalMax == 0 {
		return 0
	}
	return int(math.Round(float64(totalScore) / float64(totalMax) * 100))
}
