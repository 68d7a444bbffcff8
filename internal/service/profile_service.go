package service

import (
	"context"
	"errors"
	"time"

	"emoquiz-service/internal/cache"
	"emoquiz-service/internal/event"
	"emoquiz-service/internal/gamification"
	"emoquiz-service/internal/models"
	"emoquiz-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProfileService manages user profiles and derives the gamified progress
// view from the completion history.
type ProfileService struct {
	Repo        *repository.ProfileRepository
	Completions completionStore
	Cache       *cache.ProgressCache
	Publisher   *event.EventPublisher
}

func NewProfileService(repo *repository.ProfileRepository, completions completionStore, progressCache *cache.ProgressCache, publisher *event.EventPublisher) *ProfileService {
	return &ProfileService{
		Repo:        repo,
		Completions: completions,
		Cache:       progressCache,
		Publisher:   publisher,
	}
}

// Get returns the user's profile, or nil when none has been saved yet.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, &UpstreamError{Op: "find profile", Err: err}
	}
	return profile, nil
}

func (s *ProfileService) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	saved, err := s.Repo.Upsert(ctx, profile)
	if err != nil {
		return nil, &UpstreamError{Op: "upsert profile", Err: err}
	}

	if s.Publisher != nil {
		_ = s.Publisher.Publish(event.ProfileUpdated, map[string]interface{}{
			"user_id":   saved.UserID,
			"timestamp": time.Now(),
		})
	}
	return saved, nil
}

// Progress computes the user's gamification state from their full
// completion history, with a short-lived cache in front.
func (s *ProfileService) Progress(ctx context.Context, userID string) (*models.GamificationState, error) {
	if s.Cache != nil {
		if state, ok := s.Cache.Get(ctx, userID); ok {
			return state, nil
		}
	}

	records, err := s.Completions.FindByUser(ctx, userID)
	if err != nil {
		return nil, &UpstreamError{Op: "list completions", Err: err}
	}

	state := gamification.Compute(records, time.Now())
	if s.Cache != nil {
		s.Cache.Set(ctx, userID, &state)
	}
	return &state, nil
}
