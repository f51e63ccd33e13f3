package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"formforge/internal/model"
)

// ResponseRepo handles MongoDB operations for submitted responses. Responses
// are created once and never updated or deleted.
type ResponseRepo interface {
	Create(ctx context.Context, resp *model.FormResponse) error
	ListByForm(ctx context.Context, formID string) ([]*model.FormResponse, error)
}

type responseRepo struct {
	collection *mongo.Collection
}

// NewResponseRepo creates a new response repository
func NewResponseRepo(db *mongo.Database) ResponseRepo {
	return &responseRepo{
		collection: db.Collection("responses"),
	}
}

func (r *responseRepo) Create(ctx context.Context, resp *model.FormResponse) error {
	if resp.SubmittedAt.IsZero() {
		resp.SubmittedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, resp)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		resp.ID = oid.Hex()
	}
	return nil
}

func (r *responseRepo) ListByForm(ctx context.Context, formID string) ([]*model.FormResponse, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*model.FormResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}
