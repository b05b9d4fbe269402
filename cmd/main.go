package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sparky-backend/internal/config"
	"sparky-backend/internal/handler"
	"sparky-backend/internal/model"
	"sparky-backend/internal/service"
	"sparky-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	if !cfg.HasAPIKey() {
		if cfg.Advisor.RequireAPIKey {
			logger.Fatalf("%s is not set; refusing to start (set advisor.require_api_key=false to run degraded)", config.APIKeyEnv)
		}
		logger.Warnf("%s is not set; /analyze will answer with a configuration error", config.APIKeyEnv)
	}

	completionClient := model.NewCompletionClient(cfg.Provider)
	advisorService := service.NewAdvisorService(cfg, completionClient)
	advisorHandler := handler.NewAdvisorHandler(advisorService)

	router := setupRouter(cfg, advisorHandler)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Infof("AI Vehicle Maintenance Advisor listening on port %d (model %s)", cfg.Server.Port, cfg.Provider.Model)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("server shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}

func setupRouter(cfg *config.Config, advisorHandler *handler.AdvisorHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(handler.Recovery())
	router.Use(handler.RequestID())
	router.Use(handler.AccessLog())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}
	router.Use(cors.New(corsConfig))

	advisorHandler.RegisterRoutes(router)

	return router
}
