package gamification

import (
	"testing"
	"time"

	"emoquiz-service/internal/models"
)

var now = time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)

func recordsOnDays(dayOffsets ...int) []models.CompletionRecord {
	records := make([]models.CompletionRecord, 0, len(dayOffsets))
	for _, off := range dayOffsets {
		records = append(records, models.CompletionRecord{
			CompletedAt: now.AddDate(0, 0, -off).Add(-2 * time.Hour),
		})
	}
	return records
}

func TestLevelFormula(t *testing.T) {
	tests := []struct {
		completions int
		wantLevel   int
		wantXP      int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{2, 1, 2},
		{3, 2, 0},
		{5, 2, 2},
		{6, 3, 0},
		{29, 10, 2},
	}

	for _, tt := range tests {
		records := make([]models.CompletionRecord, tt.completions)
		for i := range records {
			records[i].CompletedAt = now.Add(-time.Duration(i) * time.Hour)
		}
		state := Compute(records, now)
		if state.Level != tt.wantLevel || state.XPInLevel != tt.wantXP {
			t.Errorf("completions=%d: level %d xp %d/3, want level %d xp %d/3",
				tt.completions, state.Level, state.XPInLevel, tt.wantLevel, tt.wantXP)
		}
		if state.CompletionCount != tt.completions {
			t.Errorf("completions=%d: count = %d", tt.completions, state.CompletionCount)
		}
	}
}

func TestLevelMonotonicInCompletionCount(t *testing.T) {
	prev := 0
	for n := 0; n <= 50; n++ {
		records := make([]models.CompletionRecord, n)
		for i := range records {
			records[i].CompletedAt = now.Add(-time.Duration(i) * time.Minute)
		}
		state := Compute(records, now)
		if state.Level < prev {
			t.Fatalf("level decreased at completions=%d: %d -> %d", n, prev, state.Level)
		}
		prev = state.Level
	}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name string
		days []int
		want int
	}{
		{"no completions", nil, 0},
		{"today only", []int{0}, 1},
		{"three consecutive days ending today", []int{0, 1, 2}, 3},
		{"gap before today", []int{2, 3}, 0},
		{"yesterday only keeps streak alive", []int{1}, 1},
		{"yesterday and before", []int{1, 2, 3}, 3},
		{"broken chain counts only recent run", []int{0, 1, 3, 4}, 2},
		{"same day counted once", []int{0, 0, 0}, 1},
		{"same day twice plus yesterday", []int{0, 0, 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := Compute(recordsOnDays(tt.days...), now)
			if state.CurrentStreak != tt.want {
				t.Errorf("streak = %d, want %d", state.CurrentStreak, tt.want)
			}
			if state.CurrentStreak > state.CompletionCount {
				t.Errorf("streak %d exceeds completion count %d", state.CurrentStreak, state.CompletionCount)
			}
		})
	}
}

func TestStreakIgnoresInputOrder(t *testing.T) {
	records := recordsOnDays(2, 0, 1)
	state := Compute(records, now)
	if state.CurrentStreak != 3 {
		t.Errorf("streak = %d, want 3 regardless of record order", state.CurrentStreak)
	}
}

func TestCharacterBands(t *testing.T) {
	tests := []struct {
		completions int
		wantTitle   string
	}{
		{0, "Aprendiz Emocional"},
		{2, "Aprendiz Emocional"},
		{3, "Explorador de Emociones"},
		{6, "Aventurero del Corazón"},
		{10, "Guardián del Equilibrio"},
		{15, "Sabio de las Emociones"},
		{25, "Gran Maestro Emocional"},
		{40, "Leyenda de la Inteligencia Emocional"},
		{99, "Leyenda de la Inteligencia Emocional"},
	}

	for _, tt := range tests {
		band := bandFor(tt.completions)
		if band.Title != tt.wantTitle {
			t.Errorf("bandFor(%d) = %q, want %q", tt.completions, band.Title, tt.wantTitle)
		}
		if band.Description == "" {
			t.Errorf("bandFor(%d) has empty description", tt.completions)
		}
	}
}

func TestBandsAreMonotonic(t *testing.T) {
	for i := 1; i < len(characterBands); i++ {
		if characterBands[i].Threshold <= characterBands[i-1].Threshold {
			t.Fatalf("band thresholds not strictly ascending at index %d", i)
		}
	}
	if len(characterBands) != 7 {
		t.Errorf("expected 7 character bands, got %d", len(characterBands))
	}
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		completions int
		want        int
	}{
		{0, 5},
		{4, 5},
		{5, 10},
		{9, 10},
		{10, 15},
		{23, 25},
		{25, 30},
	}

	for _, tt := range tests {
		if got := nextMilestoneAfter(tt.completions); got != tt.want {
			t.Errorf("nextMilestoneAfter(%d) = %d, want %d", tt.completions, got, tt.want)
		}
	}
}

func TestMilestoneText(t *testing.T) {
	tests := []struct {
		completions int
		milestone   int
		want        string
	}{
		{3, 5, "Te faltan 2 ejercicios para convertirte en Explorador Avanzado"},
		{7, 10, "Te faltan 3 ejercicios para convertirte en Maestro del Equilibrio"},
		{14, 15, "Te faltan 1 ejercicios para convertirte en Sabio Emocional"},
		{21, 25, "Te faltan 4 ejercicios para convertirte en Gran Maestro"},
		{27, 30, "Te faltan 3 ejercicios para alcanzar el nivel 6"},
	}

	for _, tt := range tests {
		if got := milestoneText(tt.completions, tt.milestone); got != tt.want {
			t.Errorf("milestoneText(%d, %d) = %q, want %q", tt.completions, tt.milestone, got, tt.want)
		}
	}
}
