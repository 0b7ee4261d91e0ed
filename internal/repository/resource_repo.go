package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studyhub/internal/model"
)

// ResourceRepo handles MongoDB operations for study resources
type ResourceRepo interface {
	List(ctx context.Context) ([]model.Resource, error)
	ReplaceAll(ctx context.Context, resources []model.Resource) error
}

type resourceRepo struct {
	collection *mongo.Collection
}

// NewResourceRepo creates a new resource repository
func NewResourceRepo(db *mongo.Database) ResourceRepo {
	return &resourceRepo{
		collection: db.Collection("resources"),
	}
}

func (r *resourceRepo) List(ctx context.Context) ([]model.Resource, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var resources []model.Resource
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepo) ReplaceAll(ctx context.Context, resources []model.Resource) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(resources) == 0 {
		return nil
	}

	docs := make([]interface{}, len(resources))
	for i, res := range resources {
		docs[i] = res
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
