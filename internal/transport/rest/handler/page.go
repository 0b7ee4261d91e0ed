package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"studyhub/internal/service"
	"studyhub/internal/view"
)

// SessionCookie holds the learner's session token on the HTML pages
const SessionCookie = "quiz_session"

// PageConfig configures the HTML page handler
type PageConfig struct {
	DefaultSlug  string
	CookieTTL    time.Duration
	SecureCookie bool
}

// PageHandler serves the server-rendered pages. Every page goes through
// both the resource renderer and the quiz; each one skips pages without
// its container.
type PageHandler struct {
	resourceSvc *service.ResourceService
	quizSvc     *service.QuizService
	authSvc     *service.AuthService
	cfg         PageConfig
	log         *zap.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(
	resourceSvc *service.ResourceService,
	quizSvc *service.QuizService,
	authSvc *service.AuthService,
	cfg PageConfig,
	log *zap.Logger,
) *PageHandler {
	return &PageHandler{
		resourceSvc: resourceSvc,
		quizSvc:     quizSvc,
		authSvc:     authSvc,
		cfg:         cfg,
		log:         log,
	}
}

// Resources handles GET /
func (h *PageHandler) Resources(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, view.NewResourcesPage(), "")
}

// Quiz handles GET /quiz
func (h *PageHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, view.NewQuizPage(), h.sessionID(r))
}

// Start handles POST /quiz/start
func (h *PageHandler) Start(w http.ResponseWriter, r *http.Request) {
	slug := r.FormValue("quiz")
	if slug == "" {
		slug = h.cfg.DefaultSlug
	}

	v, err := h.quizSvc.Start(r.Context(), slug)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    v.Token,
		Path:     "/",
		MaxAge:   int(h.cfg.CookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	h.write(w, http.StatusOK, v.Page)
}

// Answer handles POST /quiz/answer
func (h *PageHandler) Answer(w http.ResponseWriter, r *http.Request) {
	answer, err := strconv.Atoi(r.FormValue("answer"))
	if err != nil {
		h.fail(w, r, errInvalidForm)
		return
	}
	h.transition(w, r, func(ctx context.Context, id string) (*service.QuizView, error) {
		return h.quizSvc.SelectAnswer(ctx, id, answer)
	})
}

// Next handles POST /quiz/next
func (h *PageHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.quizSvc.Advance)
}

// Restart handles POST /quiz/restart
func (h *PageHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.quizSvc.Restart)
}

var errInvalidForm = errors.New("invalid form")

func (h *PageHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, sessionID string) (*service.QuizView, error),
) {
	id := h.sessionID(r)
	if id == "" {
		http.Redirect(w, r, "/quiz", http.StatusSeeOther)
		return
	}

	v, err := op(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.resourceSvc.Render(v.Page)
	h.write(w, http.StatusOK, v.Page)
}

// show renders page with both features and the given session, if any
func (h *PageHandler) show(w http.ResponseWriter, r *http.Request, page *view.Page, sessionID string) {
	h.resourceSvc.Render(page)

	if _, err := h.quizSvc.Render(r.Context(), page, sessionID); err != nil {
		if !errors.Is(err, service.ErrSessionNotFound) && !errors.Is(err, service.ErrQuizNotFound) {
			h.fail(w, r, err)
			return
		}
		// stale cookie: fall back to the start screen
		h.clearCookie(w)
		page = view.NewQuizPage()
		h.resourceSvc.Render(page)
		if _, err := h.quizSvc.Render(r.Context(), page, ""); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	h.write(w, http.StatusOK, page)
}

// fail re-renders the quiz page with the error status. A missing session
// drops the cookie and shows the start screen.
func (h *PageHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if errors.Is(err, errInvalidForm) {
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		h.log.Error("page request failed", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal server error", status)
		return
	}
	if errors.Is(err, service.ErrSessionNotFound) {
		h.clearCookie(w)
	}

	page := view.NewQuizPage()
	h.resourceSvc.Render(page)
	sessionID := h.sessionID(r)
	if errors.Is(err, service.ErrSessionNotFound) {
		sessionID = ""
	}
	if _, rerr := h.quizSvc.Render(r.Context(), page, sessionID); rerr != nil {
		if _, rerr = h.quizSvc.Render(r.Context(), page, ""); rerr != nil {
			http.Error(w, err.Error(), status)
			return
		}
	}
	h.write(w, status, page)
}

func (h *PageHandler) sessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return ""
	}
	claims, err := h.authSvc.ValidateSessionToken(c.Value)
	if err != nil {
		return ""
	}
	return claims.SessionID
}

func (h *PageHandler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *PageHandler) write(w http.ResponseWriter, status int, page *view.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := view.WriteHTML(w, page); err != nil {
		h.log.Warn("failed to write page", zap.Error(err))
	}
}
