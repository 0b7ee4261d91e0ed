package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestion() Question {
	return Question{
		Prompt: `\(1+1\) ?`,
		Answers: []Answer{
			{Label: "1"},
			{Label: "2", IsCorrect: true},
		},
	}
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
		ok     bool
	}{
		{"valid", func(q *Question) {}, true},
		{"empty prompt", func(q *Question) { q.Prompt = "  " }, false},
		{"single answer", func(q *Question) { q.Answers = q.Answers[1:] }, false},
		{"no correct answer", func(q *Question) { q.Answers[1].IsCorrect = false }, false},
		{"two correct answers", func(q *Question) { q.Answers[0].IsCorrect = true }, false},
		{"empty label", func(q *Question) { q.Answers[0].Label = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := q.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidQuestion)
			}
		})
	}
}

func TestCorrectIndex(t *testing.T) {
	assert.Equal(t, 1, validQuestion().CorrectIndex())
	assert.Equal(t, -1, Question{Answers: []Answer{{Label: "a"}}}.CorrectIndex())
}

func TestQuizValidate(t *testing.T) {
	q := &Quiz{Slug: "analyse-1", Title: "Analyse", Questions: []Question{validQuestion()}}
	require.NoError(t, q.Validate())

	for _, slug := range []string{"", "Analyse", "a b", "-a", "a--b"} {
		bad := *q
		bad.Slug = slug
		assert.ErrorIs(t, bad.Validate(), ErrInvalidQuiz, slug)
	}

	untitled := *q
	untitled.Title = ""
	assert.ErrorIs(t, untitled.Validate(), ErrInvalidQuiz)

	broken := *q
	broken.Questions = []Question{validQuestion(), {Prompt: "?"}}
	err := broken.Validate()
	assert.ErrorIs(t, err, ErrInvalidQuestion)
	assert.Contains(t, err.Error(), "question 2")

	// a quiz without questions is allowed; it scores 0%
	empty := *q
	empty.Questions = nil
	assert.NoError(t, empty.Validate())
}

func TestNewQuizSession(t *testing.T) {
	s := NewQuizSession("s_1", "demo")
	assert.Equal(t, SessionNotStarted, s.State)
	assert.Equal(t, NoSelection, s.SelectedIndex)
	assert.Nil(t, s.FinishedAt)
}
