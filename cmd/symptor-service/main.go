package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/symptor-ai/symptor/pkg/catalog"
	"github.com/symptor-ai/symptor/pkg/common/config"
	"github.com/symptor-ai/symptor/pkg/common/database"
	"github.com/symptor-ai/symptor/pkg/common/kafka"
	"github.com/symptor-ai/symptor/pkg/common/logger"
	"github.com/symptor-ai/symptor/pkg/diagnosis"
	"github.com/symptor-ai/symptor/pkg/dialogue"
	"github.com/symptor-ai/symptor/pkg/gateway/middleware"
	"github.com/symptor-ai/symptor/pkg/inference"
	"github.com/symptor-ai/symptor/pkg/recommendation"
)

func main() {
	logger.Init()
	cfg := config.Load()

	db, err := database.GetPostgres()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to connect to postgres")
	}

	catalogRepo := catalog.NewRepository(db)
	if err := catalogRepo.AutoMigrate(); err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate condition tables")
	}
	catalogCache := catalog.NewCache(catalogRepo, cfg.CatalogCacheTTL, time.Now)

	historyRepo := diagnosis.NewRepository(db)
	if err := historyRepo.AutoMigrate(); err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate diagnosis tables")
	}

	recRepo := recommendation.NewRepository(db)
	if err := recRepo.AutoMigrate(); err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate recommendation tables")
	}

	var fallback diagnosis.Fallback
	if cfg.LLMAPIKey != "" {
		client := inference.NewClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModelName, cfg.InferenceTimeout)
		fallback = inference.NewAdapter(client)
	} else {
		logger.Log.Warn("no LLM API key configured, fallback inference disabled")
	}

	producer := kafka.NewProducer(cfg.DiagnosisEventTopic)
	defer producer.Close()

	diagnosisSvc := diagnosis.NewService(catalogCache, historyRepo, fallback, producer)
	diagnosisHandler := diagnosis.NewHTTPHandler(diagnosisSvc, cfg.MaxRequestBody)

	sessionStore := dialogue.NewRedisStore(database.GetRedis())
	machine := dialogue.NewMachine(dialogue.Thresholds{
		StrongRatio:  cfg.MatchStrongRatio,
		ConfirmRatio: cfg.MatchConfirmRatio,
		MinCount:     cfg.MatchMinCount,
		SmallSetSize: cfg.MatchSmallSetSize,
	})
	dialogueSvc := dialogue.NewService(sessionStore, catalogCache, machine)
	dialogueHandler := dialogue.NewHTTPHandler(dialogueSvc, cfg.MaxRequestBody)

	recSvc := recommendation.NewService(recRepo)
	recHandler := recommendation.NewHTTPHandler(recSvc, cfg.MaxRequestBody)

	router := mux.NewRouter()
	router.Use(middleware.Recovery)
	router.Use(middleware.Logging)
	router.Use(middleware.CORS)
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	router.Use(middleware.Identity)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	diagnosisHandler.Register(api)
	dialogueHandler.Register(api)
	recHandler.Register(api)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		}).Info("Symptor Service started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Symptor Service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("server forced to shutdown")
	}

	if err := database.ClosePostgres(); err != nil {
		logger.Log.WithError(err).Error("failed to close postgres")
	}
	if err := database.CloseRedis(); err != nil {
		logger.Log.WithError(err).Error("failed to close redis")
	}

	logger.Log.Info("Symptor Service stopped")
}
