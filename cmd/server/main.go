package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	docapp "github.com/draftly/backend/internal/application/document"
	identityapp "github.com/draftly/backend/internal/application/identity"
	tmplapp "github.com/draftly/backend/internal/application/template"
	"github.com/draftly/backend/internal/infrastructure/auth"
	"github.com/draftly/backend/internal/infrastructure/config"
	"github.com/draftly/backend/internal/infrastructure/export"
	"github.com/draftly/backend/internal/infrastructure/generation"
	"github.com/draftly/backend/internal/infrastructure/logger"
	"github.com/draftly/backend/internal/infrastructure/persistence"
	"github.com/draftly/backend/internal/infrastructure/storage"
	"github.com/draftly/backend/internal/infrastructure/telemetry"
	"github.com/draftly/backend/internal/interfaces/http/handler"
	"github.com/draftly/backend/internal/interfaces/http/middleware"
	"github.com/draftly/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/draftly/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Draftly API
//	@version		1.0
//	@description	Document generation backend for freelancers: proposals, onboarding emails and invoices with AI drafting, templates, styles and PDF export
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	https://github.com/draftly/backend
//	@contact.email	support@draftly.example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Draftly Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize OpenTelemetry tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database query tracing via otelgorm
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbTraceCfg := telemetry.DefaultDBTracingConfig()
		dbTraceCfg.Enabled = true
		dbTracePlugin := telemetry.NewDBTracingPlugin(dbTraceCfg, log)
		if err := dbTracePlugin.RegisterOtelGorm(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	proposalRepo := persistence.NewGormProposalRepository(db.DB)
	emailRepo := persistence.NewGormOnboardingEmailRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB, cfg.Invoice.ItemWritePolicy, log)

	// Content generation gateway
	generator := generation.NewOpenAIGateway(generation.Config{
		APIKey:      cfg.OpenAI.APIKey,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Timeout:     cfg.OpenAI.Timeout,
		BaseURL:     cfg.OpenAI.BaseURL,
	}, log)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	documentService := docapp.NewService(proposalRepo, emailRepo, invoiceRepo, userRepo, generator, log)
	templateService := tmplapp.NewService()

	// PDF rendering and artifact storage
	renderer := export.NewChromeRenderer(cfg.Export, log)
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	var artifactStore export.ArtifactStore
	if cfg.Export.UploadExports {
		if cfg.Storage.Enabled {
			s3Store, err := storage.NewS3ArtifactStorage(&cfg.Storage)
			if err != nil {
				log.Fatal("Failed to initialize object storage", zap.Error(err))
			}
			if err := s3Store.EnsureBucket(context.Background()); err != nil {
				log.Warn("Failed to ensure storage bucket", zap.Error(err))
			}
			artifactStore = s3Store
			log.Info("Export uploads enabled", zap.String("backend", "s3"), zap.String("bucket", cfg.Storage.Bucket))
		} else {
			localStore, err := storage.NewLocalArtifactStorage(cfg.Export.LocalDirectory)
			if err != nil {
				log.Fatal("Failed to initialize local artifact storage", zap.Error(err))
			}
			artifactStore = localStore
			log.Info("Export uploads enabled", zap.String("backend", "local"), zap.String("directory", cfg.Export.LocalDirectory))
		}
	}
	exporter := export.NewExporter(renderer, artifactStore, cfg.Export, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	documentHandler := handler.NewDocumentHandler(documentService)
	templateHandler := handler.NewTemplateHandler(templateService)
	exportHandler := handler.NewExportHandler(exporter)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing - OpenTelemetry spans (if enabled)
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	// 8. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-Page-Count", "X-Download-URL"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Swagger documentation endpoint
	if cfg.Swagger.Enabled {
		swaggerProtection := middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, middleware.JWTAuthMiddleware(jwtService))
		engine.GET("/swagger/*any", swaggerProtection, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	// Configure skip paths for public endpoints
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		SkipPathPrefixes: []string{
			"/swagger",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Identity domain (registration, login, subscription)
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.RateLimit(authLimiter))
		log.Info("Auth rate limiting enabled",
			zap.Int("requests", cfg.HTTP.AuthRateLimitRequests),
			zap.Duration("window", cfg.HTTP.AuthRateLimitWindow),
		)
	}
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.PUT("/password", authHandler.ChangePassword)
	authRoutes.PUT("/company", authHandler.UpdateCompany)
	authRoutes.POST("/subscribe", authHandler.Subscribe)
	authRoutes.DELETE("/subscription", authHandler.CancelSubscription)

	// Document domain (generation, listing, deletion)
	documentRoutes := router.NewDomainGroup("documents", "/documents")
	documentRoutes.POST("/proposals", documentHandler.GenerateProposal)
	documentRoutes.GET("/proposals", documentHandler.ListProposals)
	documentRoutes.POST("/emails", documentHandler.GenerateEmail)
	documentRoutes.GET("/emails", documentHandler.ListEmails)
	documentRoutes.POST("/invoices", documentHandler.GenerateInvoice)
	documentRoutes.GET("/invoices", documentHandler.ListInvoices)
	documentRoutes.GET("/recent", documentHandler.RecentDocuments)
	documentRoutes.DELETE("/:type/:id", documentHandler.DeleteDocument)

	// Template domain (built-in catalog, styles, assembly)
	// The static /styles route must be registered before /:id
	templateRoutes := router.NewDomainGroup("templates", "/templates")
	templateRoutes.GET("", templateHandler.ListTemplates)
	templateRoutes.GET("/styles", templateHandler.ListStyles)
	templateRoutes.GET("/:id", templateHandler.GetTemplate)
	templateRoutes.POST("/stylesheet", templateHandler.ResolveStyleSheet)
	templateRoutes.POST("/assemble", templateHandler.AssembleDocument)

	// Export domain (PDF and text downloads)
	exportRoutes := router.NewDomainGroup("export", "/export")
	exportRoutes.POST("/pdf", exportHandler.ExportPDF)
	exportRoutes.POST("/text", exportHandler.ExportText)

	// System routes with swagger-documented handlers
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	// Register all domain groups
	r.Register(authRoutes).
		Register(documentRoutes).
		Register(templateRoutes).
		Register(exportRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
