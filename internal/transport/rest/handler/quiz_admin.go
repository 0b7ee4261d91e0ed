package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"studyhub/internal/model"
	"studyhub/internal/service"
)

const (
	defaultTopScores     = 10
	defaultAttemptsLimit = 50
)

// QuizAdminHandler handles quiz authoring endpoints
type QuizAdminHandler struct {
	adminSvc *service.QuizAdminService
}

// NewQuizAdminHandler creates a new quiz admin handler
func NewQuizAdminHandler(adminSvc *service.QuizAdminService) *QuizAdminHandler {
	return &QuizAdminHandler{adminSvc: adminSvc}
}

// Create handles POST /v1/quizzes
// @Summary Create a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Quiz true "quiz"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quizzes [post]
func (h *QuizAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var q model.Quiz
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.adminSvc.Create(r.Context(), &q)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"quizId": id,
		"slug":   q.Slug,
	})
}

// List handles GET /v1/quizzes
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Quiz
// @Router /quizzes [get]
func (h *QuizAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.adminSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quizzes)
}

// Get handles GET /v1/quizzes/{slug}
// @Summary Get a quiz
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param slug path string true "quiz slug"
// @Success 200 {object} model.Quiz
// @Failure 404 {object} map[string]string
// @Router /quizzes/{slug} [get]
func (h *QuizAdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.adminSvc.Get(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// Update handles PUT /v1/quizzes/{slug}
// @Summary Replace a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "quiz slug"
// @Param body body model.Quiz true "quiz"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quizzes/{slug} [put]
func (h *QuizAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	var q model.Quiz
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	q.Slug = mux.Vars(r)["slug"]

	if err := h.adminSvc.Update(r.Context(), &q); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Stats handles GET /v1/quizzes/{slug}/stats
// @Summary Attempt counters and best scores
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param slug path string true "quiz slug"
// @Param top query int false "number of best scores"
// @Success 200 {object} model.QuizStats
// @Router /quizzes/{slug}/stats [get]
func (h *QuizAdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	top := queryInt(r, "top", defaultTopScores)

	stats, err := h.adminSvc.Stats(r.Context(), mux.Vars(r)["slug"], top)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Attempts handles GET /v1/quizzes/{slug}/attempts
// @Summary Most recent finished attempts
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param slug path string true "quiz slug"
// @Param limit query int false "max attempts"
// @Success 200 {array} model.Attempt
// @Router /quizzes/{slug}/attempts [get]
func (h *QuizAdminHandler) Attempts(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultAttemptsLimit)

	attempts, err := h.adminSvc.Attempts(r.Context(), mux.Vars(r)["slug"], limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attempts)
}

func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
