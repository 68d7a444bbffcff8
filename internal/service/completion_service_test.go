package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"emoquiz-service/internal/catalog"
	"emoquiz-service/internal/models"
)

type fakeStore struct {
	created []*models.CompletionRecord
	err     error
}

func (f *fakeStore) Create(ctx context.Context, record *models.CompletionRecord) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, record)
	return nil
}

func (f *fakeStore) FindByUser(ctx context.Context, userID string) ([]models.CompletionRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	records := make([]models.CompletionRecord, 0, len(f.created))
	for _, r := range f.created {
		records = append(records, *r)
	}
	return records, nil
}

type fakeUploader struct {
	calls int
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, userID, filename, contentType string, reader io.Reader, size int64) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "http://minio/evidence-files/" + userID + "/" + filename, nil
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]models.Pillar{
		{
			Name:      "Autoconocimiento",
			Icon:      "🧠",
			Questions: []string{"q1", "q2"},
			Exercises: []models.Exercise{
				{ID: "ex-any", Title: "Ejercicio libre", EvidenceType: models.EvidenceAny},
				{ID: "ex-text", Title: "Ejercicio escrito", EvidenceType: models.EvidenceText},
				{ID: "ex-audio", Title: "Ejercicio de audio", EvidenceType: models.EvidenceAudio},
			},
		},
	})
}

func newTestService(store *fakeStore, uploader *fakeUploader) *CompletionService {
	return &CompletionService{
		Store:    store,
		Uploader: uploader,
		Catalog:  testCatalog(),
	}
}

func TestSubmitValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input SubmitCompletionInput
	}{
		{
			"audio without file",
			SubmitCompletionInput{ExerciseID: "ex-any", EvidenceType: models.EvidenceAudio},
		},
		{
			"video without file",
			SubmitCompletionInput{ExerciseID: "ex-any", EvidenceType: models.EvidenceVideo},
		},
		{
			"text with blank body",
			SubmitCompletionInput{ExerciseID: "ex-any", EvidenceType: models.EvidenceText, EvidenceText: "   \n\t"},
		},
		{
			"unknown evidence type",
			SubmitCompletionInput{ExerciseID: "ex-any", EvidenceType: "photo"},
		},
		{
			"type mismatch with exercise constraint",
			SubmitCompletionInput{ExerciseID: "ex-audio", EvidenceType: models.EvidenceText, EvidenceText: "hola"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			uploader := &fakeUploader{}
			svc := newTestService(store, uploader)

			_, _, err := svc.Submit(context.Background(), "user-1", tt.input)
			if !IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(store.created) != 0 {
				t.Error("validation failure must not create a record")
			}
			if uploader.calls != 0 {
				t.Error("validation failure must not upload anything")
			}
		})
	}
}

func TestSubmitUnknownExercise(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeUploader{})
	_, _, err := svc.Submit(context.Background(), "user-1", SubmitCompletionInput{
		ExerciseID:   "missing",
		EvidenceType: models.EvidenceText,
		EvidenceText: "hola",
	})
	if !errors.Is(err, ErrExerciseNotFound) {
		t.Fatalf("expected ErrExerciseNotFound, got %v", err)
	}
}

func TestSubmitTextEvidence(t *testing.T) {
	store := &fakeStore{}
	uploader := &fakeUploader{}
	svc := newTestService(store, uploader)

	record, message, err := svc.Submit(context.Background(), "user-1", SubmitCompletionInput{
		ExerciseID:   "ex-text",
		EvidenceType: models.EvidenceText,
		EvidenceText: "  Hoy registré mis emociones.  ",
		Reflection:   " Me ayudó a frenar. ",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if message == "" {
		t.Error("expected a congratulation message")
	}
	if uploader.calls != 0 {
		t.Error("text evidence must not hit file storage")
	}
	if len(store.created) != 1 {
		t.Fatalf("records created = %d, want 1", len(store.created))
	}
	if record.EvidenceText != "Hoy registré mis emociones." {
		t.Errorf("evidence text = %q, want trimmed", record.EvidenceText)
	}
	if record.Reflection != "Me ayudó a frenar." {
		t.Errorf("reflection = %q, want trimmed", record.Reflection)
	}
	if record.Pillar != "Autoconocimiento" || record.ExerciseTitle != "Ejercicio escrito" {
		t.Errorf("record not annotated with catalog data: %+v", record)
	}
	if record.CompletedAt.IsZero() {
		t.Error("completedAt not stamped")
	}
}

func TestSubmitFileEvidence(t *testing.T) {
	store := &fakeStore{}
	uploader := &fakeUploader{}
	svc := newTestService(store, uploader)

	record, _, err := svc.Submit(context.Background(), "user-1", SubmitCompletionInput{
		ExerciseID:   "ex-audio",
		EvidenceType: models.EvidenceAudio,
		File: &EvidenceFile{
			Name:        "nota.mp3",
			ContentType: "audio/mpeg",
			Size:        12,
			Reader:      strings.NewReader("audio-bytes!"),
		},
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if uploader.calls != 1 {
		t.Errorf("upload calls = %d, want 1", uploader.calls)
	}
	if record.EvidenceFileURL == "" {
		t.Error("record missing evidence file URL")
	}
	if record.EvidenceText != "" {
		t.Error("file evidence must not carry text")
	}
}

func TestSubmitUploadFailureWritesNothing(t *testing.T) {
	store := &fakeStore{}
	uploader := &fakeUploader{err: errors.New("minio down")}
	svc := newTestService(store, uploader)

	_, _, err := svc.Submit(context.Background(), "user-1", SubmitCompletionInput{
		ExerciseID:   "ex-any",
		EvidenceType: models.EvidenceVideo,
		File: &EvidenceFile{
			Name:        "video.mp4",
			ContentType: "video/mp4",
			Size:        4,
			Reader:      strings.NewReader("mp4!"),
		},
	})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if len(store.created) != 0 {
		t.Error("failed upload must not leave a partial record")
	}
}

func TestSubmitStoreFailureIsUpstream(t *testing.T) {
	store := &fakeStore{err: errors.New("mongo down")}
	svc := newTestService(store, &fakeUploader{})

	_, _, err := svc.Submit(context.Background(), "user-1", SubmitCompletionInput{
		ExerciseID:   "ex-text",
		EvidenceType: models.EvidenceText,
		EvidenceText: "hola",
	})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if IsValidation(err) {
		t.Error("store failure must not look like a validation error")
	}
}

func TestCongratulationPool(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeUploader{})
	msg := svc.congratulation()
	found := false
	for _, m := range congratulations {
		if m == msg {
			found = true
		}
	}
	if !found {
		t.Errorf("message %q not from the fixed pool", msg)
	}
}
