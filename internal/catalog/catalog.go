package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"emoquiz-service/internal/models"
)

//go:embed data/catalog.json
var embedded embed.FS

// Catalog holds the five emotional pillars with their diagnostic questions
// and remediation exercises. Content is loaded once at startup and never
// mutated afterwards.
type Catalog struct {
	pillars    []models.Pillar
	startIndex []int // prefix sums of question counts, one entry per pillar
	total      int
}

type catalogFile struct {
	Pillars []models.Pillar `json:"pillars"`
}

// Load reads the catalog from path, or from the embedded asset when path is
// empty.
func Load(path string) (*Catalog, error) {
	var raw []byte
	var err error
	if path != "" {
		raw, err = os.ReadFile(path)
	} else {
		raw, err = embedded.ReadFile("data/catalog.json")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return New(file.Pillars), nil
}

// New builds a catalog around an already-decoded pillar list.
func New(pillars []models.Pillar) *Catalog {
	c := &Catalog{
		pillars:    pillars,
		startIndex: make([]int, len(pillars)),
	}
	for i, p := range pillars {
		c.startIndex[i] = c.total
		c.total += len(p.Questions)
	}
	return c
}

func (c *Catalog) Pillars() []models.Pillar {
	return c.pillars
}

func (c *Catalog) TotalQuestionCount() int {
	return c.total
}

// LocateQuestion maps a global question index onto (pillar, local question)
// by linear scan over the cumulative counts.
func (c *Catalog) LocateQuestion(globalIndex int) (pillarIndex, localIndex int, err error) {
	if globalIndex < 0 || globalIndex >= c.total {
		return 0, 0, fmt.Errorf("question index %d out of range [0,%d)", globalIndex, c.total)
	}
	for i := len(c.pillars) - 1; i >= 0; i-- {
		if globalIndex >= c.startIndex[i] {
			return i, globalIndex - c.startIndex[i], nil
		}
	}
	// Unreachable while startIndex[0] == 0.
	return 0, 0, fmt.Errorf("question index %d not covered by any pillar", globalIndex)
}

// PillarStartIndex returns the global index of a pillar's first question.
func (c *Catalog) PillarStartIndex(pillarIndex int) int {
	if pillarIndex < 0 || pillarIndex >= len(c.startIndex) {
		return 0
	}
	return c.startIndex[pillarIndex]
}

// FindExercise looks an exercise up by ID across all pillars.
func (c *Catalog) FindExercise(id string) (models.Exercise, string, bool) {
	for _, p := range c.pillars {
		for _, ex := range p.Exercises {
			if ex.ID == id {
				return ex, p.Name, true
			}
		}
	}
	return models.Exercise{}, "", false
}
