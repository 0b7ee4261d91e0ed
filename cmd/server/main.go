package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	_ "studyhub/docs"
	"studyhub/internal/cache"
	"studyhub/internal/config"
	"studyhub/internal/logger"
	"studyhub/internal/quiz"
	"studyhub/internal/repository"
	"studyhub/internal/service"
	"studyhub/internal/transport/rest"
	"studyhub/internal/transport/ws"
)

// @title Studyhub API
// @version 1.0
// @description Study resources and a multiple choice quiz with scoring
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer lg.Sync()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return err
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		return err
	}
	lg.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	db := mongoClient.Database(cfg.Mongo.Database)
	if err := repository.EnsureQuizIndexes(ctx, db); err != nil {
		return err
	}

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr(),
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return err
	}
	lg.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr()))

	// Initialize WebSocket hub
	wsHub := ws.NewHub(lg)
	defer wsHub.Close()

	// Initialize repositories
	resourceRepo := repository.NewResourceRepo(db)
	quizRepo := repository.NewQuizRepo(db)
	attemptRepo := repository.NewAttemptRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb, cfg.Quiz.SessionTTL)
	statsCache := cache.NewStatsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.Auth, cfg.Quiz.SessionTTL)

	resourceSvc := service.NewResourceService(resourceRepo, lg)
	resourceSvc.Load(ctx)

	quizSvc := service.NewQuizService(quizRepo, attemptRepo, sessionCache, statsCache, authSvc, service.QuizSettings{
		PassPercent: cfg.Quiz.PassPercent,
		Typesetter:  quiz.MathTypesetter{},
		Celebrator:  quiz.NewConfetti(cfg.Quiz.ConfettiCount, nil, nil),
	}, lg)
	quizSvc.SetBroadcaster(wsHub)

	adminSvc := service.NewQuizAdminService(quizRepo, attemptRepo, statsCache)

	router := rest.NewRouter(&rest.Container{
		AuthService:      authSvc,
		ResourceService:  resourceSvc,
		QuizService:      quizSvc,
		QuizAdminService: adminSvc,
		WSHub:            wsHub,
		Config:           cfg,
		Log:              lg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("default_quiz", cfg.Quiz.DefaultSlug))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return err
	}
	lg.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	lg.Info("server exited")
	return nil
}
