package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/AveiroDigital/studio-agenda/internal/config"
	"github.com/AveiroDigital/studio-agenda/internal/httperr"
	"github.com/AveiroDigital/studio-agenda/internal/observability"
	"github.com/AveiroDigital/studio-agenda/internal/routes"
	"github.com/AveiroDigital/studio-agenda/internal/store"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	st := store.New()
	st.Seed(cfg.AdminUsername, cfg.AdminPassword)

	metrics := observability.NewMetrics()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		httperr.Internal(c)
	}))

	routes.Register(r, st, cfg, logger, metrics)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
