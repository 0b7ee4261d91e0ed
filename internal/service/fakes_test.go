package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"studyhub/internal/model"
	"studyhub/internal/repository"
)

type fakeQuizRepo struct {
	mu      sync.Mutex
	quizzes map[string]*model.Quiz
}

func newFakeQuizRepo(quizzes ...*model.Quiz) *fakeQuizRepo {
	r := &fakeQuizRepo{quizzes: map[string]*model.Quiz{}}
	for _, q := range quizzes {
		r.quizzes[q.Slug] = q
	}
	return r
}

func (r *fakeQuizRepo) Create(_ context.Context, q *model.Quiz) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quizzes[q.Slug]; ok {
		return "", repository.ErrDuplicateSlug
	}
	q.ID = "id_" + q.Slug
	r.quizzes[q.Slug] = q
	return q.ID, nil
}

func (r *fakeQuizRepo) GetBySlug(_ context.Context, slug string) (*model.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quizzes[slug], nil
}

func (r *fakeQuizRepo) List(_ context.Context) ([]*model.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Quiz, 0, len(r.quizzes))
	for _, q := range r.quizzes {
		out = append(out, q)
	}
	return out, nil
}

func (r *fakeQuizRepo) Update(_ context.Context, q *model.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quizzes[q.Slug]; !ok {
		return mongo.ErrNoDocuments
	}
	q.UpdatedAt = time.Now()
	r.quizzes[q.Slug] = q
	return nil
}

func (r *fakeQuizRepo) Upsert(_ context.Context, q *model.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quizzes[q.Slug] = q
	return nil
}

type fakeAttemptRepo struct {
	mu       sync.Mutex
	attempts []*model.Attempt
	err      error
}

func (r *fakeAttemptRepo) Create(_ context.Context, a *model.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.attempts = append(r.attempts, a)
	return nil
}

func (r *fakeAttemptRepo) ListByQuiz(_ context.Context, slug string, limit int) ([]*model.Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Attempt
	for i := len(r.attempts) - 1; i >= 0 && len(out) < limit; i-- {
		if r.attempts[i].QuizSlug == slug {
			out = append(out, r.attempts[i])
		}
	}
	return out, nil
}

// fakeSessionCache stores copies so tests see only what was saved
type fakeSessionCache struct {
	mu       sync.Mutex
	sessions map[string]model.QuizSession
	sets     int
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{sessions: map[string]model.QuizSession{}}
}

func (c *fakeSessionCache) Set(_ context.Context, s *model.QuizSession) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[s.ID] = *s
	c.sets++
	return nil
}

func (c *fakeSessionCache) Get(_ context.Context, id string) (*model.QuizSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (c *fakeSessionCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
	return nil
}

type recordedAttempt struct {
	slug, sessionID string
	percent         int
	passed          bool
}

type fakeStatsCache struct {
	mu       sync.Mutex
	recorded []recordedAttempt
}

func (c *fakeStatsCache) RecordAttempt(_ context.Context, slug, sessionID string, percent int, passed bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recorded = append(c.recorded, recordedAttempt{slug, sessionID, percent, passed})
	return nil
}

func (c *fakeStatsCache) Get(_ context.Context, slug string, _ int) (*model.QuizStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats := &model.QuizStats{QuizSlug: slug}
	for _, r := range c.recorded {
		if r.slug != slug {
			continue
		}
		stats.Attempts++
		if r.passed {
			stats.Passed++
		}
	}
	return stats, nil
}

type event struct {
	sessionID string
	msgType   string
	payload   interface{}
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []event
}

func (b *recordingBroadcaster) BroadcastToSession(sessionID, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event{sessionID, msgType, payload})
}

func (b *recordingBroadcaster) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.events))
	for i, e := range b.events {
		out[i] = e.msgType
	}
	return out
}

type fakeResourceRepo struct {
	resources []model.Resource
	err       error
	calls     int
}

func (r *fakeResourceRepo) List(context.Context) ([]model.Resource, error) {
	r.calls++
	return r.resources, r.err
}

func (r *fakeResourceRepo) ReplaceAll(_ context.Context, resources []model.Resource) error {
	r.resources = resources
	return nil
}

var errStorage = errors.New("storage down")
