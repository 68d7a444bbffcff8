package service

import (
	"context"
	"io"
	"math/rand"
	"strings"
	"time"

	"emoquiz-service/internal/cache"
	"emoquiz-service/internal/catalog"
	"emoquiz-service/internal/event"
	"emoquiz-service/internal/models"
)

// completionStore is the slice of the persistence layer the workflow
// needs. *repository.CompletionRepository satisfies it.
type completionStore interface {
	Create(ctx context.Context, record *models.CompletionRecord) error
	FindByUser(ctx context.Context, userID string) ([]models.CompletionRecord, error)
}

// evidenceUploader stores an evidence blob and returns its durable public
// URL. *storage.EvidenceStore satisfies it.
type evidenceUploader interface {
	Upload(ctx context.Context, userID, filename, contentType string, reader io.Reader, size int64) (string, error)
}

// EvidenceFile carries one uploaded file through the workflow.
type EvidenceFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// SubmitCompletionInput is everything the user hands over when marking an
// exercise as done.
type SubmitCompletionInput struct {
	ExerciseID   string
	EvidenceType string
	EvidenceText string
	Reflection   string
	File         *EvidenceFile
}

var congratulations = []string{
	"¡Felicitaciones! Tu crecimiento personal es admirable y cada paso que das te acerca más a desarrollar tu inteligencia emocional.",
	"¡Excelente trabajo! La constancia es la clave del bienestar emocional, y hoy lo has demostrado.",
	"¡Muy bien! Cada ejercicio completado fortalece un poco más tus competencias emocionales.",
	"¡Enhorabuena! Sigue así: la inteligencia emocional se construye con práctica diaria como la de hoy.",
}

// CompletionService runs the exercise-completion workflow: validate, upload
// evidence if present, then append exactly one record. The record is only
// written after a required upload succeeds, so a failed upload leaves no
// partial state behind.
type CompletionService struct {
	Store     completionStore
	Uploader  evidenceUploader
	Catalog   *catalog.Catalog
	Cache     *cache.ProgressCache
	Publisher *event.EventPublisher
	rng       *rand.Rand
}

func NewCompletionService(store completionStore, uploader evidenceUploader, cat *catalog.Catalog, progressCache *cache.ProgressCache, publisher *event.EventPublisher) *CompletionService {
	return &CompletionService{
		Store:     store,
		Uploader:  uploader,
		Catalog:   cat,
		Cache:     progressCache,
		Publisher: publisher,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Submit validates and persists one completion, returning the created
// record and a congratulation message.
func (s *CompletionService) Submit(ctx context.Context, userID string, input SubmitCompletionInput) (*models.CompletionRecord, string, error) {
	exercise, pillarName, err := s.validate(input)
	if err != nil {
		return nil, "", err
	}

	record := &models.CompletionRecord{
		UserID:        userID,
		ExerciseID:    exercise.ID,
		ExerciseTitle: exercise.Title,
		Pillar:        pillarName,
		EvidenceType:  input.EvidenceType,
		Reflection:    strings.TrimSpace(input.Reflection),
		CompletedAt:   time.Now(),
	}

	if input.EvidenceType == models.EvidenceText {
		record.EvidenceText = strings.TrimSpace(input.EvidenceText)
	} else {
		url, err := s.Uploader.Upload(ctx, userID, input.File.Name, input.File.ContentType, input.File.Reader, input.File.Size)
		if err != nil {
			return nil, "", &UpstreamError{Op: "upload evidence", Err: err}
		}
		record.EvidenceFileURL = url
	}

	if err := s.Store.Create(ctx, record); err != nil {
		return nil, "", &UpstreamError{Op: "create completion", Err: err}
	}

	if s.Cache != nil {
		s.Cache.Invalidate(ctx, userID)
	}
	if s.Publisher != nil {
		_ = s.Publisher.Publish(event.CompletionCreated, map[string]interface{}{
			"completion_id": record.ID,
			"user_id":       userID,
			"exercise_id":   record.ExerciseID,
			"timestamp":     record.CompletedAt,
		})
	}

	return record, s.congratulation(), nil
}

// Timeline returns the user's completion history, most recent first.
func (s *CompletionService) Timeline(ctx context.Context, userID string) ([]models.CompletionRecord, error) {
	records, err := s.Store.FindByUser(ctx, userID)
	if err != nil {
		return nil, &UpstreamError{Op: "list completions", Err: err}
	}
	return records, nil
}

// validate checks the submission without touching any collaborator.
func (s *CompletionService) validate(input SubmitCompletionInput) (models.Exercise, string, error) {
	exercise, pillarName, ok := s.Catalog.FindExercise(input.ExerciseID)
	if !ok {
		return models.Exercise{}, "", ErrExerciseNotFound
	}

	switch input.EvidenceType {
	case models.EvidenceText, models.EvidenceAudio, models.EvidenceVideo:
	default:
		return models.Exercise{}, "", &ValidationError{Field: "evidence_type", Message: "tipo de evidencia no válido"}
	}

	if exercise.EvidenceType != models.EvidenceAny && input.EvidenceType != exercise.EvidenceType {
		return models.Exercise{}, "", &ValidationError{Field: "evidence_type", Message: "este ejercicio requiere evidencia de tipo " + exercise.EvidenceType}
	}

	if input.EvidenceType == models.EvidenceText {
		if strings.TrimSpace(input.EvidenceText) == "" {
			return models.Exercise{}, "", &ValidationError{Field: "evidence_text", Message: "texto requerido"}
		}
	} else if input.File == nil {
		return models.Exercise{}, "", &ValidationError{Field: "evidence_file", Message: "archivo requerido"}
	}

	return exercise, pillarName, nil
}

// congratulation picks a message from the fixed pool. Which one is shown
// is cosmetic.
func (s *CompletionService) congratulation() string {
	if s.rng == nil {
		return congratulations[0]
	}
	return congratulations[s.rng.Intn(len(congratulations))]
}
