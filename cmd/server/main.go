package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/share2solve/backend/internal/config"
	"github.com/share2solve/backend/internal/handler"
	"github.com/share2solve/backend/internal/logging"
	"github.com/share2solve/backend/internal/repository"
	"github.com/share2solve/backend/internal/service"
	"github.com/share2solve/backend/pkg/auth"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	problemRepo := repository.NewPgProblemRepository(pool)
	problemService := service.NewProblemService(problemRepo)
	admin := auth.NewAdmin(cfg.AdminPassword)

	h := handler.New(pool, cfg.AllowedOrigins)
	problemHandler := handler.NewProblemHandler(problemService, admin)
	adminHandler := handler.NewAdminHandler(admin)

	// 投稿エンドポイントのみ厳しめのレート制限を適用する
	submitLimiter := handler.NewRateLimiter(cfg.SubmitRateLimitMax, cfg.RateLimitWindow)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/problems", problemHandler.List)
	mux.Handle("POST /api/problems", submitLimiter.Middleware(http.HandlerFunc(problemHandler.Create)))
	mux.HandleFunc("PATCH /api/problems/{id}", problemHandler.UpdateStatus)
	mux.HandleFunc("DELETE /api/problems/{id}", problemHandler.Delete)
	mux.HandleFunc("POST /api/admin/login", adminHandler.Login)
	mux.HandleFunc("/", handler.NotFound)

	generalLimiter := handler.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)

	var root http.Handler = mux
	root = handler.Recover(root)
	root = handler.RequestLogger(root)
	root = h.CORS(root)
	root = generalLimiter.Middleware(root)
	root = handler.SecurityHeaders(root)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
