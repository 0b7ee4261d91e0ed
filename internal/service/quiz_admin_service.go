package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"studyhub/internal/cache"
	"studyhub/internal/model"
	"studyhub/internal/repository"
)

const maxAttemptsPage = 200

// QuizAdminService handles quiz authoring and reporting for hosts
type QuizAdminService struct {
	quizRepo    repository.QuizRepo
	attemptRepo repository.AttemptRepo
	stats       cache.StatsCache
}

// NewQuizAdminService creates a new quiz admin service
func NewQuizAdminService(
	quizRepo repository.QuizRepo,
	attemptRepo repository.AttemptRepo,
	stats cache.StatsCache,
) *QuizAdminService {
	return &QuizAdminService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		stats:       stats,
	}
}

// Create validates and stores a new quiz
func (s *QuizAdminService) Create(ctx context.Context, q *model.Quiz) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}
	return s.quizRepo.Create(ctx, q)
}

// Get retrieves a quiz by slug
func (s *QuizAdminService) Get(ctx context.Context, slug string) (*model.Quiz, error) {
	q, err := s.quizRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("%w: %s", ErrQuizNotFound, slug)
	}
	return q, nil
}

// List retrieves all quizzes
func (s *QuizAdminService) List(ctx context.Context) ([]*model.Quiz, error) {
	return s.quizRepo.List(ctx)
}

// Update replaces the title and questions of an existing quiz
func (s *QuizAdminService) Update(ctx context.Context, q *model.Quiz) error {
	if err := q.Validate(); err != nil {
		return err
	}
	err := s.quizRepo.Update(ctx, q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %s", ErrQuizNotFound, q.Slug)
	}
	return err
}

// Stats returns attempt counters and the top percents for a quiz
func (s *QuizAdminService) Stats(ctx context.Context, slug string, top int) (*model.QuizStats, error) {
	if _, err := s.Get(ctx, slug); err != nil {
		return nil, err
	}
	return s.stats.Get(ctx, slug, top)
}

// Attempts returns the most recent finished sessions of a quiz
func (s *QuizAdminService) Attempts(ctx context.Context, slug string, limit int) ([]*model.Attempt, error) {
	if limit <= 0 || limit > maxAttemptsPage {
		limit = maxAttemptsPage
	}
	attempts, err := s.attemptRepo.ListByQuiz(ctx, slug, limit)
	if err != nil {
		return nil, err
	}
	if attempts == nil {
		attempts = []*model.Attempt{}
	}
	return attempts, nil
}
