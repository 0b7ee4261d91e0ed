package model

import "time"

// Attempt is the stored result of a finished quiz session
type Attempt struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	SessionID  string    `json:"sessionId" bson:"sessionId"`
	QuizSlug   string    `json:"quizSlug" bson:"quizSlug"`
	Score      int       `json:"score" bson:"score"`
	Total      int       `json:"total" bson:"total"`
	Percent    int       `json:"percent" bson:"percent"`
	Passed     bool      `json:"passed" bson:"passed"`
	FinishedAt time.Time `json:"finishedAt" bson:"finishedAt"`
}

// QuizStats aggregates attempts for one quiz
type QuizStats struct {
	QuizSlug  string       `json:"quizSlug"`
	Attempts  int64        `json:"attempts"`
	Passed    int64        `json:"passed"`
	TopScores []ScoreEntry `json:"topScores"`
}

// ScoreEntry is one session's percent in the score ranking
type ScoreEntry struct {
	SessionID string `json:"sessionId"`
	Percent   int    `json:"percent"`
	Rank      int    `json:"rank"`
}
