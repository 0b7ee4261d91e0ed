package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidQuiz is returned when quiz metadata is malformed
var ErrInvalidQuiz = errors.New("invalid quiz")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Quiz is an ordered list of questions stored as one document
type Quiz struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	Slug      string     `json:"slug" bson:"slug"` // e.g. "analyse-1"
	Title     string     `json:"title" bson:"title"`
	Questions []Question `json:"questions" bson:"questions"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// Validate checks the slug, title and every question
func (q *Quiz) Validate() error {
	if !slugPattern.MatchString(q.Slug) {
		return fmt.Errorf("%w: bad slug %q", ErrInvalidQuiz, q.Slug)
	}
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidQuiz)
	}
	for i, question := range q.Questions {
		if err := question.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
