package model

import "time"

type SessionState string

const (
	SessionNotStarted SessionState = "not_started"
	SessionInProgress SessionState = "in_progress"
	SessionFinished   SessionState = "finished"
)

// NoSelection marks a question with no chosen answer yet
const NoSelection = -1

// QuizSession is one learner's attempt at a quiz
type QuizSession struct {
	ID            string       `json:"id"`
	QuizSlug      string       `json:"quizSlug"`
	QuizVersion   time.Time    `json:"quizVersion"` // quiz UpdatedAt when started
	State         SessionState `json:"state"`
	QuestionIndex int          `json:"questionIndex"`
	Score         int          `json:"score"`
	Answered      bool         `json:"answered"`      // current question only
	SelectedIndex int          `json:"selectedIndex"` // NoSelection until answered
	Total         int          `json:"total"`
	StartedAt     time.Time    `json:"startedAt"`
	FinishedAt    *time.Time   `json:"finishedAt,omitempty"`
}

// NewQuizSession creates a session that has not been started yet
func NewQuizSession(id, quizSlug string) *QuizSession {
	return &QuizSession{
		ID:            id,
		QuizSlug:      quizSlug,
		State:         SessionNotStarted,
		SelectedIndex: NoSelection,
	}
}
