package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gonanoid "github.com/matoous/go-nanoid/v2"

	mid "github.com/handover-hq/atlas/internal/server/middleware"
	"github.com/handover-hq/atlas/internal/util"
	"github.com/handover-hq/atlas/pkg/explore"
	"github.com/handover-hq/atlas/pkg/logger"
	"github.com/handover-hq/atlas/pkg/source"
	"github.com/handover-hq/atlas/pkg/source/httpsrc"
	s3src "github.com/handover-hq/atlas/pkg/source/s3"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func newPayloadSource(ctx context.Context) source.PayloadSource {
	switch util.GetEnvString("GRAPH_SOURCE", "http") {
	case "s3":
		src, err := s3src.NewSource(ctx, s3src.NewSourceParams{
			Bucket:    util.GetEnv("AWS_BUCKET"),
			Prefix:    util.GetEnvString("GRAPH_PREFIX", "graphs"),
			Endpoint:  util.GetEnv("AWS_ENDPOINT"),
			Region:    util.GetEnv("AWS_REGION"),
			AccessKey: util.GetEnv("AWS_ACCESS_KEY"),
			SecretKey: util.GetEnv("AWS_SECRET_KEY"),
		})
		if err != nil {
			logger.Fatal("Failed to create S3 payload source", "err", err)
		}
		return src
	default:
		return httpsrc.NewSource(httpsrc.NewSourceParams{
			BaseURL: util.GetEnv("ANALYSIS_URL"),
			APIKey:  util.GetEnv("ANALYSIS_API_KEY"),
			Timeout: time.Duration(util.GetEnvInt("ANALYSIS_TIMEOUT_SEC", 30)) * time.Second,
		})
	}
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var key *keyfunc.Keyfunc
	if authURL := util.GetEnv("AUTH_URL"); authURL != "" {
		k, err := keyfunc.NewDefault([]string{authURL + "/jwks"})
		if err != nil {
			logger.Fatal("Failed to load jwks keys", "err", err)
		}
		key = &k
	}

	registry := explore.NewRegistry(newPayloadSource(ctx))

	app := &mid.App{
		Registry:     registry,
		Key:          key,
		MasterAPIKey: util.GetEnv("MASTER_API_KEY"),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			id, err := gonanoid.New()
			if err != nil {
				return ""
			}
			return id
		},
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("16M"))

	RegisterRoutes(e)

	// The scripted demo sessions are warmed in the background so the first
	// explorer to open them does not wait on the analysis backend.
	if demo := util.GetEnvList("DEMO_SESSIONS"); len(demo) > 0 {
		go func() {
			if err := registry.Preload(ctx, demo); err != nil {
				logger.Warn("Demo session preload finished with errors", "err", err)
			}
		}()
	}

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
