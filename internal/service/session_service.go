package service

import (
	"context"
	"errors"
	"time"

	"emoquiz-service/internal/catalog"
	"emoquiz-service/internal/event"
	"emoquiz-service/internal/models"
	"emoquiz-service/internal/quizflow"
	"emoquiz-service/internal/repository"
	"emoquiz-service/internal/scoring"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// SessionService runs quiz sessions: one state machine per stored session,
// scored when the machine reaches Completed.
type SessionService struct {
	Repo      *repository.SessionRepository
	Catalog   *catalog.Catalog
	Publisher *event.EventPublisher
	machine   *quizflow.Machine
}

func NewSessionService(repo *repository.SessionRepository, cat *catalog.Catalog, publisher *event.EventPublisher) *SessionService {
	return &SessionService{
		Repo:      repo,
		Catalog:   cat,
		Publisher: publisher,
		machine:   quizflow.NewMachine(cat.TotalQuestionCount()),
	}
}

// CurrentOrCreate returns the user's latest session, creating a fresh
// NotStarted one when none exists.
func (s *SessionService) CurrentOrCreate(ctx context.Context, userID string) (*models.QuizSession, error) {
	session, err := s.Repo.FindCurrentByUser(ctx, userID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &UpstreamError{Op: "find session", Err: err}
	}

	session = &models.QuizSession{
		UserID:       userID,
		SessionToken: uuid.New().String(),
		Phase:        models.PhaseNotStarted,
		Answers:      models.AnswerSet{},
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return nil, &UpstreamError{Op: "create session", Err: err}
	}
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, userID, sessionID string) (*models.QuizSession, error) {
	return s.load(ctx, userID, sessionID)
}

// Start begins the quiz. Starting an already running or completed session
// is a no-op.
func (s *SessionService) Start(ctx context.Context, userID, sessionID string) (*models.QuizSession, error) {
	return s.transition(ctx, userID, sessionID, func(session *models.QuizSession) bool {
		if s.machine.Start(session) {
			session.StartTime = time.Now()
			return true
		}
		return false
	})
}

// Answer records a Likert value for the session's current question.
func (s *SessionService) Answer(ctx context.Context, userID, sessionID string, value int) (*models.QuizSession, error) {
	return s.transition(ctx, userID, sessionID, func(session *models.QuizSession) bool {
		return s.machine.Answer(session, value)
	})
}

// Next advances the session; on the last question it completes the quiz.
func (s *SessionService) Next(ctx context.Context, userID, sessionID string) (*models.QuizSession, error) {
	var completed bool
	session, err := s.transition(ctx, userID, sessionID, func(session *models.QuizSession) bool {
		if !s.machine.Next(session) {
			return false
		}
		if session.Phase == models.PhaseCompleted {
			session.EndTime = time.Now()
			completed = true
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	if completed && s.Publisher != nil {
		_ = s.Publisher.Publish(event.SessionCompleted, map[string]interface{}{
			"session_id": session.ID,
			"user_id":    session.UserID,
			"timestamp":  time.Now(),
		})
	}
	return session, nil
}

func (s *SessionService) Previous(ctx context.Context, userID, sessionID string) (*models.QuizSession, error) {
	return s.transition(ctx, userID, sessionID, func(session *models.QuizSession) bool {
		return s.machine.Previous(session)
	})
}

// Restart clears every answer and returns the session to NotStarted.
func (s *SessionService) Restart(ctx context.Context, userID, sessionID string) (*models.QuizSession, error) {
	return s.transition(ctx, userID, sessionID, func(session *models.QuizSession) bool {
		s.machine.Restart(session)
		session.StartTime = time.Time{}
		session.EndTime = time.Time{}
		return true
	})
}

// Results scores a completed session across all pillars.
func (s *SessionService) Results(ctx context.Context, userID, sessionID string) (*models.AssessmentResult, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase != models.PhaseCompleted {
		return nil, ErrSessionIncomplete
	}

	pillarResults := scoring.Score(s.Catalog.Pillars(), session.Answers)
	return &models.AssessmentResult{
		SessionID:         session.ID,
		UserID:            session.UserID,
		Pillars:           pillarResults,
		OverallPercentage: scoring.OverallPercentage(pillarResults),
	}, nil
}

func (s *SessionService) load(ctx context.Context, userID, sessionID string) (*models.QuizSession, error) {
	session, err := s.Repo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSessionNotFound
		}
		return nil, &UpstreamError{Op: "find session", Err: err}
	}
	if session.UserID != userID {
		return nil, ErrSessionNotOwned
	}
	return session, nil
}

// transition loads the session, applies one machine step, and persists the
// session only when the step actually changed it. A rejected guard still
// returns the (unchanged) session.
func (s *SessionService) transition(ctx context.Context, userID, sessionID string, apply func(*models.QuizSession) bool) (*models.QuizSession, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if !apply(session) {
		return session, nil
	}
	if err := s.Repo.Save(ctx, session); err != nil {
		return nil, &UpstreamError{Op: "save session", Err: err}
	}
	return session, nil
}
