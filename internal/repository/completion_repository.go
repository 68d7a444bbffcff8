package repository

import (
	"context"

	"emoquiz-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CompletionRepository is append-only: completions are never updated or
// deleted once written.
type CompletionRepository struct {
	Col *mongo.Collection
}

func NewCompletionRepository(db *mongo.Database) *CompletionRepository {
	return &CompletionRepository{Col: db.Collection("exercise_completions")}
}

func (r *CompletionRepository) Create(ctx context.Context, record *models.CompletionRecord) error {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, record)
	return err
}

// FindByUser returns the user's completion history, most recent first.
func (r *CompletionRepository) FindByUser(ctx context.Context, userID string) ([]models.CompletionRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.CompletionRecord
	for cur.Next(ctx) {
		var rec models.CompletionRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, cur.Err()
}

func (r *CompletionRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "completed_at", Value: -1},
		},
	})
	return err
}
