package repository

import (
	"context"
	"time"

	"emoquiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.QuizSession, error) {
	var session models.QuizSession
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// FindCurrentByUser returns the user's most recently touched session.
func (r *SessionRepository) FindCurrentByUser(ctx context.Context, userID string) (*models.QuizSession, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	var session models.QuizSession
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *models.QuizSession) error {
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	session.UpdatedAt = time.Now()
	_, err := r.Col.InsertOne(ctx, session)
	return err
}

// Save replaces the stored session with its in-memory state.
func (r *SessionRepository) Save(ctx context.Context, session *models.QuizSession) error {
	session.UpdatedAt = time.Now()
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	return err
}
