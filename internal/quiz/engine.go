// Package quiz runs a multiple choice quiz as a state machine over an
// explicit session, rendering every transition into a view.Page.
package quiz

import (
	"errors"
	"fmt"
	"time"

	"studyhub/internal/model"
	"studyhub/internal/view"
)

var (
	ErrNotInProgress = errors.New("quiz is not in progress")
	ErrNotAnswered   = errors.New("current question has not been answered")
	ErrInvalidAnswer = errors.New("answer index out of range")
	ErrQuizChanged   = errors.New("quiz changed since the session started")
)

const DefaultPassPercent = 70

const (
	SuccessTitle  = "Félicitations, vous avez réussi !"
	TryAgainTitle = "Dommage, essayez encore !"
)

// Typesetter turns math markup inside a rendered container into
// typeset notation, in place.
type Typesetter interface {
	Typeset(container *view.Element)
}

// Celebrator draws the celebration effect into a container
type Celebrator interface {
	Celebrate(container *view.Element)
	Clear(container *view.Element)
}

// Engine drives one quiz over a page. It keeps no session state of its
// own: every operation takes the session it mutates.
type Engine struct {
	page        *view.Page
	questions   []model.Question
	typesetter  Typesetter
	celebrator  Celebrator
	passPercent int
	now         func() time.Time
}

type Option func(*Engine)

// WithTypesetter sets the math typesetting pass run after each question render
func WithTypesetter(t Typesetter) Option {
	return func(e *Engine) {
		if t != nil {
			e.typesetter = t
		}
	}
}

// WithCelebrator sets the effect shown on a passing result
func WithCelebrator(c Celebrator) Option {
	return func(e *Engine) {
		if c != nil {
			e.celebrator = c
		}
	}
}

// WithPassPercent overrides the 70% pass threshold
func WithPassPercent(p int) Option {
	return func(e *Engine) {
		e.passPercent = p
	}
}

// WithClock overrides time.Now for session timestamps
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Mount attaches an engine to page. It reports false, and the quiz stays
// disabled, when the page has no quiz container.
func Mount(page *view.Page, questions []model.Question, opts ...Option) (*Engine, bool) {
	if page.Mount(view.QuizContainer) == nil {
		return nil, false
	}

	e := &Engine{
		page:        page,
		questions:   questions,
		typesetter:  NopTypesetter{},
		celebrator:  nopCelebrator{},
		passPercent: DefaultPassPercent,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, true
}

// Total returns the number of questions
func (e *Engine) Total() int {
	return len(e.questions)
}

// Start resets s and shows the first question. With no questions the
// session goes straight to the results.
func (e *Engine) Start(s *model.QuizSession) {
	s.Score = 0
	s.QuestionIndex = 0
	s.Answered = false
	s.SelectedIndex = model.NoSelection
	s.Total = len(e.questions)
	s.StartedAt = e.now()
	s.FinishedAt = nil

	if c := e.page.Mount(view.ConfettiContainer); c != nil {
		e.celebrator.Clear(c)
	}
	for _, id := range []string{view.ResultsTitle, view.ResultsScore} {
		if el := e.page.Mount(id); el != nil {
			el.Clear()
		}
	}

	if len(e.questions) == 0 {
		e.finish(s)
		return
	}

	s.State = model.SessionInProgress
	e.showQuestion(s)
}

// Restart is Start; it is valid from any state.
func (e *Engine) Restart(s *model.QuizSession) {
	e.Start(s)
}

// SelectAnswer records the answer at index i for the current question.
// Only the first selection per question counts; later ones return false.
func (e *Engine) SelectAnswer(s *model.QuizSession, i int) (bool, error) {
	q, err := e.current(s)
	if err != nil {
		return false, err
	}
	if s.Answered {
		return false, nil
	}
	if i < 0 || i >= len(q.Answers) {
		return false, fmt.Errorf("%w: %d", ErrInvalidAnswer, i)
	}

	s.Answered = true
	s.SelectedIndex = i
	if q.Answers[i].IsCorrect {
		s.Score++
	}

	e.showQuestion(s)
	return true, nil
}

// Advance moves past an answered question, finishing the quiz after the
// last one.
func (e *Engine) Advance(s *model.QuizSession) error {
	if _, err := e.current(s); err != nil {
		return err
	}
	if !s.Answered {
		return ErrNotAnswered
	}

	if s.QuestionIndex+1 < s.Total {
		s.QuestionIndex++
		s.Answered = false
		s.SelectedIndex = model.NoSelection
		e.showQuestion(s)
		return nil
	}

	e.finish(s)
	return nil
}

// Show renders the current state of s without running entry actions, so
// a finished session is displayed without a new celebration.
func (e *Engine) Show(s *model.QuizSession) {
	switch s.State {
	case model.SessionInProgress:
		if _, err := e.current(s); err == nil {
			e.showQuestion(s)
			return
		}
		e.showScreen(view.StartScreen)
	case model.SessionFinished:
		e.showResults(e.Outcome(s))
	default:
		e.showScreen(view.StartScreen)
	}
}

// Outcome scores s against the engine's pass threshold
func (e *Engine) Outcome(s *model.QuizSession) Outcome {
	return Evaluate(s.Score, s.Total, e.passPercent)
}

func (e *Engine) current(s *model.QuizSession) (model.Question, error) {
	if s.State != model.SessionInProgress {
		return model.Question{}, ErrNotInProgress
	}
	if s.Total != len(e.questions) {
		return model.Question{}, fmt.Errorf("%w: started with %d questions, now %d", ErrQuizChanged, s.Total, len(e.questions))
	}
	if s.QuestionIndex < 0 || s.QuestionIndex >= len(e.questions) {
		return model.Question{}, fmt.Errorf("%w: question %d of %d", ErrNotInProgress, s.QuestionIndex+1, len(e.questions))
	}
	return e.questions[s.QuestionIndex], nil
}

func (e *Engine) finish(s *model.QuizSession) {
	now := e.now()
	s.State = model.SessionFinished
	s.Answered = false
	s.SelectedIndex = model.NoSelection
	s.FinishedAt = &now

	out := e.Outcome(s)
	e.showResults(out)

	if out.Passed {
		if c := e.page.Mount(view.ConfettiContainer); c != nil {
			e.celebrator.Celebrate(c)
		}
	}
}

func (e *Engine) showQuestion(s *model.QuizSession) {
	qv := RenderQuestion(e.questions[s.QuestionIndex], s)

	e.showScreen(view.QuestionScreen)

	if t := e.page.Mount(view.QuestionText); t != nil {
		t.Clear()
		t.Append(qv.Prompt)
	}
	if a := e.page.Mount(view.AnswerButtons); a != nil {
		a.Clear()
		a.Append(qv.Answers...)
	}
	if n := e.page.Mount(view.NextButton); n != nil {
		n.Hidden = !s.Answered
	}

	if screen := e.page.Mount(view.QuestionScreen); screen != nil {
		screen.SetAttr("data-progress", fmt.Sprintf("%d/%d", s.QuestionIndex+1, len(e.questions)))
		e.typesetter.Typeset(screen)
	}
}

func (e *Engine) showResults(out Outcome) {
	e.showScreen(view.ResultsScreen)

	title := TryAgainTitle
	if out.Passed {
		title = SuccessTitle
	}
	if t := e.page.Mount(view.ResultsTitle); t != nil {
		t.Clear()
		t.Append(view.TextNode(title))
	}
	if sc := e.page.Mount(view.ResultsScore); sc != nil {
		sc.Clear()
		sc.Append(view.TextNode(out.String()))
	}
}

func (e *Engine) showScreen(id string) {
	for _, screen := range []string{view.StartScreen, view.QuestionScreen, view.ResultsScreen} {
		if el := e.page.Mount(screen); el != nil {
			el.Hidden = screen != id
		}
	}
}

type nopCelebrator struct{}

func (nopCelebrator) Celebrate(*view.Element) {}

func (nopCelebrator) Clear(*view.Element) {}
