package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hailamir/academic-report-api/internal/handler"
	"github.com/hailamir/academic-report-api/internal/middleware"
	"github.com/hailamir/academic-report-api/internal/models"
	"github.com/hailamir/academic-report-api/internal/repository"
	"github.com/hailamir/academic-report-api/internal/service"
	"github.com/hailamir/academic-report-api/pkg/cache"
	"github.com/hailamir/academic-report-api/pkg/config"
	"github.com/hailamir/academic-report-api/pkg/database"
	"github.com/hailamir/academic-report-api/pkg/export"
	"github.com/hailamir/academic-report-api/pkg/jobs"
	"github.com/hailamir/academic-report-api/pkg/logger"
	corsmiddleware "github.com/hailamir/academic-report-api/pkg/middleware/cors"
	reqidmiddleware "github.com/hailamir/academic-report-api/pkg/middleware/requestid"
	"github.com/hailamir/academic-report-api/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	store, err := storage.NewLocalStorage(cfg.Export.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare export storage", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Export.SignedURLSecret, cfg.Export.SignedURLTTL)

	jobRepo := repository.NewJobRepository(db)

	metricsSvc := service.NewMetricsService()

	composer := service.NewComposeService(service.ComposeConfig{
		WordsPerPage:   cfg.Generation.WordsPerPage,
		Tolerance:      cfg.Generation.TolerancePercent,
		MaxPasses:      cfg.Generation.MaxPasses,
		ReferenceCount: cfg.Generation.ReferenceCount,
	}, validator.New(), logr)

	converter := export.NewConverter(cfg.Export.ConverterBin, cfg.Export.ConverterTimeout)
	exportSvc := service.NewExportService(composer, store, signer, converter, service.ExportConfig{
		APIPrefix: cfg.APIPrefix,
		ResultTTL: cfg.Export.SignedURLTTL,
	}, logr)

	worker := service.NewReportWorker(jobRepo, exportSvc, metricsSvc, cfg.Export.WorkerRetries, logr)
	queue := jobs.NewQueue("report-generation", worker.Handle, jobs.QueueConfig{
		Workers:    cfg.Export.WorkerConcurrency,
		MaxRetries: cfg.Export.WorkerRetries,
		RetryDelay: 5 * time.Second,
		Logger:     logr,
	})

	reportSvc := service.NewReportService(jobRepo, composer, queue, exportSvc, logr, service.ReportServiceConfig{
		ResultTTL:       cfg.Export.SignedURLTTL,
		CleanupInterval: cfg.Export.CleanupInterval,
		MaxRetries:      cfg.Export.WorkerRetries,
	})

	intakeSvc := service.NewIntakeService(newSessionStore(cfg, logr), reportSvc, logr)

	reportHandler := handler.NewReportHandler(reportSvc)
	intakeHandler := handler.NewIntakeHandler(intakeSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Academic Report Generator API, endpoints under %s", cfg.APIPrefix)
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/intake/sessions", intakeHandler.StartSession)
		api.GET("/intake/sessions/:id", intakeHandler.GetSession)
		api.POST("/intake/sessions/:id/answer", intakeHandler.SubmitAnswer)
		api.DELETE("/intake/sessions/:id", intakeHandler.CancelSession)

		api.POST("/reports", reportHandler.GenerateReport)
		api.GET("/reports/:id", reportHandler.ReportStatus)
		api.GET("/export/:token", reportHandler.DownloadReport)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	queue.Start(ctx)
	defer queue.Stop()
	reportSvc.RecoverPendingJobs(ctx)
	reportSvc.StartCleanup(ctx)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Warnw("graceful shutdown failed", "error", err)
	}
}

type sessionStore interface {
	Get(ctx context.Context, id string) (*models.IntakeSession, error)
	Save(ctx context.Context, session *models.IntakeSession) error
	Delete(ctx context.Context, id string) error
}

// newSessionStore prefers Redis and falls back to an in-process store when
// Redis is unreachable, so single-node deployments still work.
func newSessionStore(cfg *config.Config, logr *zap.Logger) sessionStore {
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, keeping intake sessions in memory", "error", err)
		return repository.NewMemorySessionStore(cfg.Intake.SessionTTL)
	}
	return repository.NewRedisSessionStore(client, cfg.Intake.SessionTTL)
}
