package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/internal/model"
	"studyhub/internal/view"
)

type recordingTypesetter struct {
	containers []*view.Element
}

func (r *recordingTypesetter) Typeset(c *view.Element) {
	r.containers = append(r.containers, c)
}

type recordingCelebrator struct {
	celebrations int
	clears       int
}

func (r *recordingCelebrator) Celebrate(c *view.Element) {
	r.celebrations++
	c.Append(view.NewElement("div", "", "confetti"))
}

func (r *recordingCelebrator) Clear(c *view.Element) {
	r.clears++
	c.Clear()
}

func threeQuestions() []model.Question {
	return []model.Question{
		{Prompt: `Dérivée de \(x^2\) ?`, Answers: []model.Answer{
			{Label: `\(2x\)`, IsCorrect: true}, {Label: `\(x\)`}, {Label: `\(x^3\)`},
		}},
		{Prompt: "2 + 2 ?", Answers: []model.Answer{
			{Label: "3"}, {Label: "4", IsCorrect: true},
		}},
		{Prompt: `$$\int_0^1 1\,dx$$ vaut ?`, Answers: []model.Answer{
			{Label: "0"}, {Label: "2"}, {Label: "1", IsCorrect: true},
		}},
	}
}

type fixture struct {
	page    *view.Page
	engine  *Engine
	ts      *recordingTypesetter
	cel     *recordingCelebrator
	session *model.QuizSession
}

func newFixture(t *testing.T, questions []model.Question) *fixture {
	t.Helper()

	f := &fixture{
		page:    view.NewQuizPage(),
		ts:      &recordingTypesetter{},
		cel:     &recordingCelebrator{},
		session: model.NewQuizSession("s1", "demo"),
	}

	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	e, ok := Mount(f.page, questions,
		WithTypesetter(f.ts),
		WithCelebrator(f.cel),
		WithClock(func() time.Time { return clock }))
	require.True(t, ok)
	f.engine = e
	return f
}

func (f *fixture) answer(t *testing.T, i int) {
	t.Helper()
	ok, err := f.engine.SelectAnswer(f.session, i)
	require.NoError(t, err)
	require.True(t, ok)
}

func (f *fixture) visible(id string) bool {
	return !f.page.Mount(id).Hidden
}

func TestMountWithoutQuizContainer(t *testing.T) {
	e, ok := Mount(view.NewResourcesPage(), threeQuestions())
	assert.False(t, ok)
	assert.Nil(t, e)
}

func TestStartShowsFirstQuestion(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.engine.Start(f.session)

	s := f.session
	assert.Equal(t, model.SessionInProgress, s.State)
	assert.Equal(t, 0, s.QuestionIndex)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 3, s.Total)
	assert.False(t, s.Answered)

	assert.True(t, f.visible(view.QuestionScreen))
	assert.False(t, f.visible(view.StartScreen))
	assert.False(t, f.visible(view.ResultsScreen))
	assert.False(t, f.visible(view.NextButton))
	assert.Len(t, f.page.Mount(view.AnswerButtons).Children, 3)
	assert.Equal(t, 1, f.cel.clears)

	require.Len(t, f.ts.containers, 1)
	assert.Same(t, f.page.Mount(view.QuestionScreen), f.ts.containers[0])
}

func TestStartResetsPriorSession(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.session.State = model.SessionFinished
	f.session.Score = 2
	f.session.QuestionIndex = 2
	f.session.Answered = true
	f.session.SelectedIndex = 1

	f.engine.Start(f.session)

	assert.Equal(t, model.SessionInProgress, f.session.State)
	assert.Equal(t, 0, f.session.Score)
	assert.Equal(t, 0, f.session.QuestionIndex)
	assert.False(t, f.session.Answered)
	assert.Equal(t, model.NoSelection, f.session.SelectedIndex)
	assert.Nil(t, f.session.FinishedAt)
}

func TestSelectCorrectAnswerScores(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.engine.Start(f.session)

	f.answer(t, 0)
	assert.Equal(t, 1, f.session.Score)
	assert.True(t, f.session.Answered)
	assert.True(t, f.visible(view.NextButton))

	buttons := f.page.Mount(view.AnswerButtons).Children
	for _, b := range buttons {
		assert.True(t, b.Disabled)
	}
	assert.True(t, buttons[0].HasClass(ClassCorrect))
	assert.False(t, buttons[1].HasClass(ClassIncorrect))
}

func TestSelectIncorrectAnswerMarksBoth(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.engine.Start(f.session)

	f.answer(t, 2)
	assert.Equal(t, 0, f.session.Score)

	buttons := f.page.Mount(view.AnswerButtons).Children
	assert.True(t, buttons[0].HasClass(ClassCorrect))
	assert.True(t, buttons[2].HasClass(ClassIncorrect))
	assert.False(t, buttons[1].HasClass(ClassCorrect))
	assert.False(t, buttons[1].HasClass(ClassIncorrect))
}

func TestSecondSelectionIgnored(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.engine.Start(f.session)

	f.answer(t, 1)
	ok, err := f.engine.SelectAnswer(f.session, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, f.session.Score)
	assert.Equal(t, 1, f.session.SelectedIndex)
}

func TestSelectAnswerErrors(t *testing.T) {
	f := newFixture(t, threeQuestions())

	_, err := f.engine.SelectAnswer(f.session, 0)
	assert.ErrorIs(t, err, ErrNotInProgress)

	f.engine.Start(f.session)
	_, err = f.engine.SelectAnswer(f.session, 3)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	_, err = f.engine.SelectAnswer(f.session, -1)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	assert.False(t, f.session.Answered)
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	f := newFixture(t, threeQuestions())

	assert.ErrorIs(t, f.engine.Advance(f.session), ErrNotInProgress)

	f.engine.Start(f.session)
	assert.ErrorIs(t, f.engine.Advance(f.session), ErrNotAnswered)
	assert.Equal(t, 0, f.session.QuestionIndex)
}

func TestAdvanceMovesToNextQuestion(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.engine.Start(f.session)
	f.answer(t, 0)

	require.NoError(t, f.engine.Advance(f.session))
	assert.Equal(t, 1, f.session.QuestionIndex)
	assert.False(t, f.session.Answered)
	assert.Equal(t, model.NoSelection, f.session.SelectedIndex)
	assert.False(t, f.visible(view.NextButton))

	buttons := f.page.Mount(view.AnswerButtons).Children
	require.Len(t, buttons, 2)
	for _, b := range buttons {
		assert.False(t, b.Disabled)
		assert.Empty(t, b.Attrs["data-correct"])
	}
	assert.Equal(t, "2 + 2 ?", f.page.Mount(view.QuestionText).TextContent())
	assert.Equal(t, "2/3", f.page.Mount(view.QuestionScreen).Attrs["data-progress"])
}

func TestAllCorrectCelebrates(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.engine.Start(f.session)

	for _, correct := range []int{0, 1, 2} {
		f.answer(t, correct)
		require.NoError(t, f.engine.Advance(f.session))
	}

	out := f.engine.Outcome(f.session)
	assert.Equal(t, Outcome{Score: 3, Total: 3, Percent: 100, Passed: true}, out)
	assert.Equal(t, model.SessionFinished, f.session.State)
	require.NotNil(t, f.session.FinishedAt)

	assert.True(t, f.visible(view.ResultsScreen))
	assert.False(t, f.visible(view.QuestionScreen))
	assert.Equal(t, SuccessTitle, f.page.Mount(view.ResultsTitle).TextContent())
	assert.Equal(t, "Votre score : 3 / 3 (100%)", f.page.Mount(view.ResultsScore).TextContent())
	assert.Equal(t, 1, f.cel.celebrations)
	assert.NotEmpty(t, f.page.Mount(view.ConfettiContainer).Children)
}

func TestOneCorrectTwoWrongFails(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.engine.Start(f.session)

	for _, choice := range []int{0, 0, 0} {
		f.answer(t, choice)
		require.NoError(t, f.engine.Advance(f.session))
	}

	out := f.engine.Outcome(f.session)
	assert.Equal(t, 1, out.Score)
	assert.Equal(t, 33, out.Percent)
	assert.False(t, out.Passed)
	assert.Equal(t, TryAgainTitle, f.page.Mount(view.ResultsTitle).TextContent())
	assert.Zero(t, f.cel.celebrations)
	assert.Empty(t, f.page.Mount(view.ConfettiContainer).Children)
}

func TestSingleQuestionFinishesOnAdvance(t *testing.T) {
	f := newFixture(t, threeQuestions()[:1])
	f.engine.Start(f.session)
	f.answer(t, 0)

	require.NoError(t, f.engine.Advance(f.session))
	assert.Equal(t, model.SessionFinished, f.session.State)
	assert.ErrorIs(t, f.engine.Advance(f.session), ErrNotInProgress)
}

func TestEmptyQuizFinishesAtZeroPercent(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.Start(f.session)

	assert.Equal(t, model.SessionFinished, f.session.State)
	out := f.engine.Outcome(f.session)
	assert.Equal(t, Outcome{Score: 0, Total: 0, Percent: 0, Passed: false}, out)
	assert.Zero(t, f.cel.celebrations)
	assert.Equal(t, "Votre score : 0 / 0 (0%)", f.page.Mount(view.ResultsScore).TextContent())
	assert.Empty(t, f.ts.containers)
}

func TestRestartMatchesFreshStart(t *testing.T) {
	fresh := newFixture(t, threeQuestions())
	fresh.engine.Start(fresh.session)

	f := newFixture(t, threeQuestions())
	f.engine.Start(f.session)
	for _, correct := range []int{0, 1, 2} {
		f.answer(t, correct)
		require.NoError(t, f.engine.Advance(f.session))
	}
	require.Equal(t, 1, f.cel.celebrations)

	f.engine.Restart(f.session)

	assert.Equal(t, fresh.session, f.session)
	assert.Equal(t, view.FragmentString(fresh.page.Root), view.FragmentString(f.page.Root))
	assert.Empty(t, f.page.Mount(view.ConfettiContainer).Children)
}

func TestShowDoesNotCelebrateAgain(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.engine.Start(f.session)
	for _, correct := range []int{0, 1, 2} {
		f.answer(t, correct)
		require.NoError(t, f.engine.Advance(f.session))
	}

	other := newFixture(t, threeQuestions())
	other.engine.Show(f.session)

	assert.Zero(t, other.cel.celebrations)
	assert.True(t, other.visible(view.ResultsScreen))
	assert.Equal(t, SuccessTitle, other.page.Mount(view.ResultsTitle).TextContent())
}

func TestShowRestoresAnsweredQuestion(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.engine.Start(f.session)
	f.answer(t, 1)

	other := newFixture(t, threeQuestions())
	other.engine.Show(f.session)

	buttons := other.page.Mount(view.AnswerButtons).Children
	assert.True(t, buttons[1].HasClass(ClassIncorrect))
	assert.True(t, buttons[0].HasClass(ClassCorrect))
	assert.True(t, other.visible(view.NextButton))
	assert.Len(t, other.ts.containers, 1)
}

func TestShowNotStarted(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.engine.Show(f.session)

	assert.True(t, f.visible(view.StartScreen))
	assert.False(t, f.visible(view.QuestionScreen))
	assert.False(t, f.visible(view.ResultsScreen))
}

func TestCustomPassPercent(t *testing.T) {
	page := view.NewQuizPage()
	cel := &recordingCelebrator{}
	e, ok := Mount(page, threeQuestions(), WithCelebrator(cel), WithPassPercent(30))
	require.True(t, ok)

	s := model.NewQuizSession("s", "demo")
	e.Start(s)
	for _, choice := range []int{0, 0, 0} {
		_, err := e.SelectAnswer(s, choice)
		require.NoError(t, err)
		require.NoError(t, e.Advance(s))
	}
	assert.True(t, e.Outcome(s).Passed)
	assert.Equal(t, 1, cel.celebrations)
}

func TestQuizLengthChangeRejected(t *testing.T) {
	f := newFixture(t, threeQuestions())
	f.engine.Start(f.session)
	f.answer(t, 1)

	for name, questions := range map[string][]model.Question{
		"grown":  append(threeQuestions(), threeQuestions()...),
		"shrunk": threeQuestions()[:1],
	} {
		t.Run(name, func(t *testing.T) {
			s := *f.session
			e, ok := Mount(view.NewQuizPage(), questions)
			require.True(t, ok)

			assert.ErrorIs(t, e.Advance(&s), ErrQuizChanged)
			_, err := e.SelectAnswer(&s, 0)
			assert.ErrorIs(t, err, ErrQuizChanged)

			e.Restart(&s)
			assert.Equal(t, len(questions), s.Total)
			assert.Equal(t, model.SessionInProgress, s.State)
		})
	}
}
