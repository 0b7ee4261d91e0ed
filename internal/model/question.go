package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidQuestion is returned when a question breaks an authoring rule
var ErrInvalidQuestion = errors.New("invalid question")

// Answer is one labeled choice of a question
type Answer struct {
	Label     string `json:"label" bson:"label"`
	IsCorrect bool   `json:"isCorrect" bson:"isCorrect"`
}

// Question is a multiple choice question. Prompt and labels may carry
// inline \( \) or display $$ $$ math markup.
type Question struct {
	Prompt  string   `json:"prompt" bson:"prompt"`
	Answers []Answer `json:"answers" bson:"answers"`
}

// CorrectIndex returns the index of the first correct answer, or -1
func (q Question) CorrectIndex() int {
	for i, a := range q.Answers {
		if a.IsCorrect {
			return i
		}
	}
	return -1
}

// Validate checks that the question has a prompt, at least two answers
// and exactly one correct answer.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}
	if len(q.Answers) < 2 {
		return fmt.Errorf("%w: need at least 2 answers, got %d", ErrInvalidQuestion, len(q.Answers))
	}

	correct := 0
	for i, a := range q.Answers {
		if strings.TrimSpace(a.Label) == "" {
			return fmt.Errorf("%w: answer %d has an empty label", ErrInvalidQuestion, i)
		}
		if a.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w: expected exactly 1 correct answer, got %d", ErrInvalidQuestion, correct)
	}
	return nil
}
