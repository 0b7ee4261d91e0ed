package service

// Session event types pushed to WebSocket subscribers
const (
	EventQuestionShown  = "question_shown"
	EventAnswerSelected = "answer_selected"
	EventQuizFinished   = "quiz_finished"
	EventQuizRestarted  = "quiz_restarted"
)

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
}

type nopBroadcaster struct{}

func (nopBroadcaster) BroadcastToSession(string, string, interface{}) {}
