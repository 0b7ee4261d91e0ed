package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studyhub/internal/model"
)

var ErrDuplicateSlug = errors.New("quiz slug already exists")

// QuizRepo handles MongoDB operations for quizzes
type QuizRepo interface {
	Create(ctx context.Context, quiz *model.Quiz) (string, error)
	GetBySlug(ctx context.Context, slug string) (*model.Quiz, error)
	List(ctx context.Context) ([]*model.Quiz, error)
	Update(ctx context.Context, quiz *model.Quiz) error
	Upsert(ctx context.Context, quiz *model.Quiz) error
}

type quizRepo struct {
	collection *mongo.Collection
}

// NewQuizRepo creates a new quiz repository
func NewQuizRepo(db *mongo.Database) QuizRepo {
	return &quizRepo{
		collection: db.Collection("quizzes"),
	}
}

// EnsureQuizIndexes creates the unique slug index
func EnsureQuizIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("quizzes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *quizRepo) Create(ctx context.Context, quiz *model.Quiz) (string, error) {
	quiz.CreatedAt = time.Now()
	quiz.UpdatedAt = quiz.CreatedAt

	result, err := r.collection.InsertOne(ctx, quiz)
	if mongo.IsDuplicateKeyError(err) {
		return "", ErrDuplicateSlug
	}
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	quiz.ID = oid.Hex()
	return quiz.ID, nil
}

func (r *quizRepo) GetBySlug(ctx context.Context, slug string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&quiz)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepo) List(ctx context.Context) ([]*model.Quiz, error) {
	opts := options.Find().SetSort(bson.D{{Key: "slug", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quizzes []*model.Quiz
	if err := cursor.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepo) Update(ctx context.Context, quiz *model.Quiz) error {
	quiz.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":     quiz.Title,
		"questions": quiz.Questions,
		"updatedAt": quiz.UpdatedAt,
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"slug": quiz.Slug}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *quizRepo) Upsert(ctx context.Context, quiz *model.Quiz) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":     quiz.Title,
			"questions": quiz.Questions,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"slug": quiz.Slug}, update, options.Update().SetUpsert(true))
	return err
}
