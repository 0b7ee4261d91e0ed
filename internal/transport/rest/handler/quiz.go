package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"studyhub/internal/service"
	"studyhub/internal/transport/rest/middleware"
)

// QuizHandler handles the learner session API
type QuizHandler struct {
	quizSvc *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

// StartResponse is returned when a session is created
type StartResponse struct {
	SessionID string `json:"sessionId"`
	*service.QuizView
}

// AnswerRequest is the request body for selecting an answer
type AnswerRequest struct {
	AnswerIndex *int `json:"answerIndex"`
}

// Start handles POST /v1/quiz/{slug}/sessions
// @Summary Start a quiz session
// @Tags quiz
// @Produce json
// @Param slug path string true "quiz slug"
// @Success 201 {object} StartResponse
// @Failure 404 {object} map[string]string
// @Router /quiz/{slug}/sessions [post]
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	v, err := h.quizSvc.Start(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, StartResponse{
		SessionID: v.Session.ID,
		QuizView:  v,
	})
}

// Current handles GET /v1/sessions/current
// @Summary Current session state
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.QuizView
// @Router /sessions/current [get]
func (h *QuizHandler) Current(w http.ResponseWriter, r *http.Request) {
	v, err := h.quizSvc.View(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Answer handles POST /v1/sessions/current/answers
// @Summary Select an answer for the current question
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AnswerRequest true "answer"
// @Success 200 {object} service.QuizView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/current/answers [post]
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AnswerIndex == nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := h.quizSvc.SelectAnswer(r.Context(), middleware.GetSessionID(r.Context()), *req.AnswerIndex)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Next handles POST /v1/sessions/current/next
// @Summary Move to the next question or the results
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.QuizView
// @Failure 409 {object} map[string]string
// @Router /sessions/current/next [post]
func (h *QuizHandler) Next(w http.ResponseWriter, r *http.Request) {
	v, err := h.quizSvc.Advance(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Restart handles POST /v1/sessions/current/restart
// @Summary Restart the quiz
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.QuizView
// @Router /sessions/current/restart [post]
func (h *QuizHandler) Restart(w http.ResponseWriter, r *http.Request) {
	v, err := h.quizSvc.Restart(r.Context(), middleware.GetSessionID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}
