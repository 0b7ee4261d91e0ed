package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"studyhub/internal/config"
	"studyhub/internal/service"
	"studyhub/internal/transport/rest/handler"
	"studyhub/internal/transport/rest/middleware"
	"studyhub/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	ResourceService  *service.ResourceService
	QuizService      *service.QuizService
	QuizAdminService *service.QuizAdminService
	WSHub            *ws.Hub
	Config           *config.Config
	Log              *zap.Logger
}

// NewRouter creates the router serving the pages and the API
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	resourceHandler := handler.NewResourceHandler(c.ResourceService)
	quizHandler := handler.NewQuizHandler(c.QuizService)
	adminHandler := handler.NewQuizAdminHandler(c.QuizAdminService)
	pageHandler := handler.NewPageHandler(c.ResourceService, c.QuizService, c.AuthService, handler.PageConfig{
		DefaultSlug:  c.Config.Quiz.DefaultSlug,
		CookieTTL:    c.Config.Quiz.SessionTTL,
		SecureCookie: c.Config.IsProduction(),
	}, c.Log)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Log)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.Config.CORS))
	r.Use(middleware.Logging(c.Log))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/swagger/doc.json", swaggerDoc).Methods("GET")

	// HTML pages
	r.HandleFunc("/", pageHandler.Resources).Methods("GET")
	r.HandleFunc("/quiz", pageHandler.Quiz).Methods("GET")
	r.HandleFunc("/quiz/start", pageHandler.Start).Methods("POST")
	r.HandleFunc("/quiz/answer", pageHandler.Answer).Methods("POST")
	r.HandleFunc("/quiz/next", pageHandler.Next).Methods("POST")
	r.HandleFunc("/quiz/restart", pageHandler.Restart).Methods("POST")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/resources", resourceHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/quiz/{slug}/sessions", quizHandler.Start).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/sessions/{id}", wsHandler.SessionWS).Methods("GET")

	// Session routes (require session token)
	sessionRoutes := v1.PathPrefix("/sessions/current").Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("", quizHandler.Current).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/answers", quizHandler.Answer).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/next", quizHandler.Next).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/restart", quizHandler.Restart).Methods("POST", "OPTIONS")

	// Host routes (require host auth)
	hostRoutes := v1.PathPrefix("/quizzes").Subrouter()
	hostRoutes.Use(authMW.RequireHost)

	hostRoutes.HandleFunc("", adminHandler.Create).Methods("POST", "OPTIONS")
	hostRoutes.HandleFunc("", adminHandler.List).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/{slug}", adminHandler.Get).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/{slug}", adminHandler.Update).Methods("PUT", "OPTIONS")
	hostRoutes.HandleFunc("/{slug}/stats", adminHandler.Stats).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/{slug}/attempts", adminHandler.Attempts).Methods("GET", "OPTIONS")

	return r
}

func swaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, `{"error":"api docs not registered"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

func corsMiddleware(cfg config.CORS) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
