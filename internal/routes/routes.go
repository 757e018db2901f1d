package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AveiroDigital/studio-agenda/internal/audit"
	"github.com/AveiroDigital/studio-agenda/internal/config"
	"github.com/AveiroDigital/studio-agenda/internal/handlers"
	"github.com/AveiroDigital/studio-agenda/internal/middleware"
	"github.com/AveiroDigital/studio-agenda/internal/observability"
	"github.com/AveiroDigital/studio-agenda/internal/store"
	"github.com/AveiroDigital/studio-agenda/internal/validators"
)

func Register(
	r *gin.Engine,
	st *store.Store,
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Metrics,
) {

	validators.RegisterTagNames()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORS())
	r.Use(observability.RequestLogger(logger))
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLog := audit.NewLog(1000)
	auditDispatcher := audit.NewDispatcher(auditLog, logger)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(st, cfg)
	clientHandler := handlers.NewClientHandler(st, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(st, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(st, auditDispatcher)
	productHandler := handlers.NewProductHandler(st, auditDispatcher)
	receivablesHandler := handlers.NewReceivablesHandler(st, auditDispatcher)
	payablesHandler := handlers.NewPayablesHandler(st, auditDispatcher)
	financeHandler := handlers.NewFinanceHandler(st)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLog)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CLIENTES
		// ------------------------------
		clients := api.Group("/clients")
		{
			clients.GET("", clientHandler.List)
			clients.POST("", clientHandler.Create)
			clients.GET("/:id", clientHandler.Get)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Delete)
		}

		// ------------------------------
		// SERVIÇOS
		// ------------------------------
		services := api.Group("/services")
		{
			services.GET("", serviceHandler.List)
			services.GET("/active", serviceHandler.ListActive)
			services.POST("", serviceHandler.Create)
			services.GET("/:id", serviceHandler.Get)
			services.PUT("/:id", serviceHandler.Update)
			services.DELETE("/:id", serviceHandler.Delete)
		}

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		appointments := api.Group("/appointments")
		{
			appointments.GET("", appointmentHandler.List)
			appointments.GET("/date/:date", appointmentHandler.ListByDate)
			appointments.GET("/client/:clientId", appointmentHandler.ListByClient)
			appointments.POST("", appointmentHandler.Create)
			appointments.GET("/:id", appointmentHandler.Get)
			appointments.PUT("/:id", appointmentHandler.Update)
			appointments.DELETE("/:id", appointmentHandler.Delete)
		}

		// ------------------------------
		// PRODUTOS
		// ------------------------------
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.POST("", productHandler.Create)
			products.GET("/:id", productHandler.Get)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		// ------------------------------
		// FINANCEIRO
		// ------------------------------
		receivables := api.Group("/accounts-receivable")
		{
			receivables.GET("", receivablesHandler.List)
			receivables.POST("", receivablesHandler.Create)
			receivables.GET("/:id", receivablesHandler.Get)
			receivables.PUT("/:id", receivablesHandler.Update)
			receivables.DELETE("/:id", receivablesHandler.Delete)
		}

		payables := api.Group("/accounts-payable")
		{
			payables.GET("", payablesHandler.List)
			payables.POST("", payablesHandler.Create)
			payables.GET("/:id", payablesHandler.Get)
			payables.PUT("/:id", payablesHandler.Update)
			payables.DELETE("/:id", payablesHandler.Delete)
		}

		api.GET("/financial/summary", financeHandler.Summary)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.Auth(cfg))
		{
			secured.GET("/auth/me", authHandler.Me)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
