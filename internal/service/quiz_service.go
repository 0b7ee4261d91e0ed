package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studyhub/internal/cache"
	"studyhub/internal/model"
	"studyhub/internal/quiz"
	"studyhub/internal/repository"
	"studyhub/internal/view"
)

var (
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrSessionNotFound = errors.New("session not found or expired")
)

const sessionLockStripes = 64

// QuizView is the result of a quiz operation: the session, its rendered
// page and, once finished, the outcome.
type QuizView struct {
	Session   *model.QuizSession `json:"session"`
	Outcome   *quiz.Outcome      `json:"outcome,omitempty"`
	Celebrate bool               `json:"celebrate"` // finished on this call with a pass
	Token     string             `json:"token,omitempty"`
	Page      *view.Page         `json:"view"`
}

// QuizSettings configures the learner quiz flow
type QuizSettings struct {
	PassPercent int
	Typesetter  quiz.Typesetter
	Celebrator  quiz.Celebrator
}

// QuizService runs learner sessions: it loads the quiz and session,
// drives the engine over a fresh page and stores the result.
type QuizService struct {
	quizRepo    repository.QuizRepo
	attemptRepo repository.AttemptRepo
	sessions    cache.SessionCache
	stats       cache.StatsCache
	authSvc     *AuthService
	settings    QuizSettings
	broadcaster Broadcaster
	log         *zap.Logger

	locks [sessionLockStripes]sync.Mutex
}

// NewQuizService creates a new quiz service
func NewQuizService(
	quizRepo repository.QuizRepo,
	attemptRepo repository.AttemptRepo,
	sessions cache.SessionCache,
	stats cache.StatsCache,
	authSvc *AuthService,
	settings QuizSettings,
	log *zap.Logger,
) *QuizService {
	if settings.PassPercent == 0 {
		settings.PassPercent = quiz.DefaultPassPercent
	}
	return &QuizService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		sessions:    sessions,
		stats:       stats,
		authSvc:     authSvc,
		settings:    settings,
		broadcaster: nopBroadcaster{},
		log:         log,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *QuizService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start creates a new session for the quiz and shows its first question
func (s *QuizService) Start(ctx context.Context, slug string) (*QuizView, error) {
	q, err := s.loadQuiz(ctx, slug)
	if err != nil {
		return nil, err
	}

	session := model.NewQuizSession("s_"+uuid.New().String()[:8], q.Slug)
	session.QuizVersion = q.UpdatedAt
	page := view.NewQuizPage()
	engine := s.mount(page, q)
	engine.Start(session)

	token, err := s.authSvc.GenerateSessionToken(session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.log.Info("quiz session started",
		zap.String("session", session.ID),
		zap.String("quiz", q.Slug),
		zap.Int("questions", session.Total))

	v := s.afterTransition(ctx, engine, session, page, EventQuestionShown)
	v.Token = token
	return v, nil
}

// View renders the stored state of a session without changing it
func (s *QuizService) View(ctx context.Context, sessionID string) (*QuizView, error) {
	session, q, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	page := view.NewQuizPage()
	engine := s.mount(page, q)
	engine.Show(session)

	return s.newView(engine, session, page, false), nil
}

// Render shows the session, if any, on an arbitrary page. Pages without a
// quiz container are left alone and Render reports false.
func (s *QuizService) Render(ctx context.Context, page *view.Page, sessionID string) (bool, error) {
	if page.Mount(view.QuizContainer) == nil {
		return false, nil
	}
	if sessionID == "" {
		engine, _ := quiz.Mount(page, nil)
		engine.Show(model.NewQuizSession("", ""))
		return true, nil
	}

	session, q, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	engine := s.mount(page, q)
	engine.Show(session)
	return true, nil
}

// SelectAnswer records the learner's choice for the current question
func (s *QuizService) SelectAnswer(ctx context.Context, sessionID string, answerIndex int) (*QuizView, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, q, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(session, q); err != nil {
		return nil, err
	}

	page := view.NewQuizPage()
	engine := s.mount(page, q)

	applied, err := engine.SelectAnswer(session, answerIndex)
	if err != nil {
		return nil, err
	}
	if !applied {
		engine.Show(session)
		return s.newView(engine, session, page, false), nil
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.broadcaster.BroadcastToSession(session.ID, EventAnswerSelected, map[string]interface{}{
		"questionIndex": session.QuestionIndex,
		"answerIndex":   answerIndex,
		"correct":       q.Questions[session.QuestionIndex].Answers[answerIndex].IsCorrect,
		"score":         session.Score,
	})
	return s.newView(engine, session, page, false), nil
}

// Advance moves to the next question or finishes the quiz
func (s *QuizService) Advance(ctx context.Context, sessionID string) (*QuizView, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, q, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := checkVersion(session, q); err != nil {
		return nil, err
	}

	page := view.NewQuizPage()
	engine := s.mount(page, q)
	if err := engine.Advance(session); err != nil {
		return nil, err
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return s.afterTransition(ctx, engine, session, page, EventQuestionShown), nil
}

// Restart resets the session to its first question
func (s *QuizService) Restart(ctx context.Context, sessionID string) (*QuizView, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, q, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	page := view.NewQuizPage()
	engine := s.mount(page, q)
	engine.Restart(session)
	session.QuizVersion = q.UpdatedAt

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.log.Info("quiz session restarted", zap.String("session", session.ID))
	return s.afterTransition(ctx, engine, session, page, EventQuizRestarted), nil
}

// afterTransition publishes the new state and, when the transition
// finished the quiz, records the attempt.
func (s *QuizService) afterTransition(
	ctx context.Context,
	engine *quiz.Engine,
	session *model.QuizSession,
	page *view.Page,
	event string,
) *QuizView {
	if session.State != model.SessionFinished {
		s.broadcaster.BroadcastToSession(session.ID, event, map[string]interface{}{
			"questionIndex": session.QuestionIndex,
			"total":         session.Total,
			"score":         session.Score,
		})
		return s.newView(engine, session, page, false)
	}

	out := engine.Outcome(session)
	s.recordAttempt(ctx, session, out)
	s.broadcaster.BroadcastToSession(session.ID, EventQuizFinished, map[string]interface{}{
		"outcome":   out,
		"celebrate": out.Passed,
	})
	return s.newView(engine, session, page, out.Passed)
}

func (s *QuizService) recordAttempt(ctx context.Context, session *model.QuizSession, out quiz.Outcome) {
	finishedAt := time.Now()
	if session.FinishedAt != nil {
		finishedAt = *session.FinishedAt
	}

	attempt := &model.Attempt{
		SessionID:  session.ID,
		QuizSlug:   session.QuizSlug,
		Score:      out.Score,
		Total:      out.Total,
		Percent:    out.Percent,
		Passed:     out.Passed,
		FinishedAt: finishedAt,
	}

	// A failed write must not hide the learner's result.
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		s.log.Error("failed to store attempt", zap.String("session", session.ID), zap.Error(err))
	}
	if err := s.stats.RecordAttempt(ctx, session.QuizSlug, session.ID, out.Percent, out.Passed); err != nil {
		s.log.Error("failed to update quiz stats", zap.String("quiz", session.QuizSlug), zap.Error(err))
	}

	s.log.Info("quiz session finished",
		zap.String("session", session.ID),
		zap.Int("score", out.Score),
		zap.Int("total", out.Total),
		zap.Int("percent", out.Percent),
		zap.Bool("passed", out.Passed))
}

func (s *QuizService) newView(engine *quiz.Engine, session *model.QuizSession, page *view.Page, celebrate bool) *QuizView {
	v := &QuizView{
		Session:   session,
		Celebrate: celebrate,
		Page:      page,
	}
	if session.State == model.SessionFinished {
		out := engine.Outcome(session)
		v.Outcome = &out
	}
	return v
}

func (s *QuizService) mount(page *view.Page, q *model.Quiz) *quiz.Engine {
	engine, _ := quiz.Mount(page, q.Questions,
		quiz.WithTypesetter(s.settings.Typesetter),
		quiz.WithCelebrator(s.settings.Celebrator),
		quiz.WithPassPercent(s.settings.PassPercent))
	return engine
}

func (s *QuizService) load(ctx context.Context, sessionID string) (*model.QuizSession, *model.Quiz, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, nil, ErrSessionNotFound
	}

	q, err := s.loadQuiz(ctx, session.QuizSlug)
	if err != nil {
		return nil, nil, err
	}
	return session, q, nil
}

// checkVersion rejects moves on a session whose quiz was edited after it
// started. Restart picks up the new version.
func checkVersion(session *model.QuizSession, q *model.Quiz) error {
	if session.State != model.SessionInProgress || session.QuizVersion.Equal(q.UpdatedAt) {
		return nil
	}
	return fmt.Errorf("%w: restart to load the new version", quiz.ErrQuizChanged)
}

func (s *QuizService) loadQuiz(ctx context.Context, slug string) (*model.Quiz, error) {
	q, err := s.quizRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	if q == nil {
		return nil, fmt.Errorf("%w: %s", ErrQuizNotFound, slug)
	}
	return q, nil
}

// lock serializes operations on one session within this process
func (s *QuizService) lock(sessionID string) func() {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	mu := &s.locks[h.Sum32()%sessionLockStripes]
	mu.Lock()
	return mu.Unlock
}
