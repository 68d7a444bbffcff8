package gamification

import (
	"fmt"
	"math"
	"sort"
	"time"

	"emoquiz-service/internal/models"
)

// Compute derives the full gamification state from a user's completion
// history. The input carries no ordering guarantee; records are sorted by
// completion time internally. now anchors the streak's notion of "today"
// and its location decides where calendar days roll over.
func Compute(records []models.CompletionRecord, now time.Time) models.GamificationState {
	sorted := make([]models.CompletionRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})

	count := len(sorted)
	band := bandFor(count)
	nextMilestone := nextMilestoneAfter(count)

	return models.GamificationState{
		CompletionCount:      count,
		Level:                count/XPPerLevel + 1,
		XPInLevel:            count % XPPerLevel,
		XPPerLevel:           XPPerLevel,
		CharacterTitle:       band.Title,
		CharacterDescription: band.Description,
		CurrentStreak:        streak(sorted, now),
		NextMilestone:        nextMilestone,
		NextMilestoneText:    milestoneText(count, nextMilestone),
	}
}

func bandFor(completionCount int) CharacterBand {
	band := characterBands[0]
	for _, b := range characterBands {
		if completionCount >= b.Threshold {
			band = b
		}
	}
	return band
}

func nextMilestoneAfter(completionCount int) int {
	return (completionCount/MilestoneStep + 1) * MilestoneStep
}

func milestoneText(completionCount, milestone int) string {
	remaining := milestone - completionCount
	if name, ok := milestoneNames[milestone]; ok {
		return fmt.Sprintf("Te faltan %d ejercicios para convertirte en %s", remaining, name)
	}
	return fmt.Sprintf("Te faltan %d ejercicios para alcanzar el nivel %d", remaining, milestone/MilestoneStep)
}

// streak counts consecutive calendar days with at least one completion,
// ending today or yesterday. records must already be sorted most recent
// first. Multiple completions on the same day count once.
func streak(records []models.CompletionRecord, now time.Time) int {
	if len(records) == 0 {
		return 0
	}

	loc := now.Location()
	days := make(map[time.Time]bool, len(records))
	for _, r := range records {
		days[dayOf(r.CompletedAt.In(loc))] = true
	}

	today := dayOf(now)
	lastActive := dayOf(records[0].CompletedAt.In(loc))
	sinceLast := daysBetween(lastActive, today)
	if sinceLast > 1 {
		// Last activity was the day before yesterday or earlier.
		return 0
	}

	cursor := today
	if sinceLast == 1 {
		// Nothing yet today, but yesterday keeps the streak alive.
		cursor = cursor.AddDate(0, 0, -1)
	}

	n := 0
	for days[cursor] {
		n++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return n
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween measures whole days from a to b. Rounding absorbs the odd
// 23/25 hour day around DST transitions.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
