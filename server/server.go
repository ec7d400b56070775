package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/barterhub/barterhub/internal/profile"
	"github.com/barterhub/barterhub/server/internal/observability"
	apiv1 "github.com/barterhub/barterhub/server/router/api/v1"
	"github.com/barterhub/barterhub/store"
)

// Server is the barterhub HTTP server.
type Server struct {
	Secret  string
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
	apiV1      *apiv1.APIV1Service
}

// NewServer creates the server and mounts the API routes.
func NewServer(ctx context.Context, profile *profile.Profile, store *store.Store) (*Server, error) {
	secret := profile.Secret
	if secret == "" {
		if profile.Mode == "prod" {
			return nil, errors.New("a signing secret is required in prod mode")
		}
		secret = "barterhub-dev"
	}

	e := echo.New()
	e.Debug = true
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		Skipper: echomiddleware.DefaultSkipper,
	}))
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.TimeoutWithConfig(echomiddleware.TimeoutConfig{
		Timeout: 30 * time.Second,
	}))
	e.Use(requestLogger())

	s := &Server{
		Secret:     secret,
		Profile:    profile,
		Store:      store,
		echoServer: e,
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "Service ready.")
	})

	s.apiV1 = apiv1.NewAPIV1Service(secret, profile, store, slog.Default())
	s.apiV1.Register(e)

	return s, nil
}

func (s *Server) Start(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("server started", slog.String("address", address), slog.String("mode", s.Profile.Mode))
	if err := s.echoServer.Start(address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// requestLogger stamps every request with a request ID and logs its outcome.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rc := observability.NewRequestContextWithID(slog.Default(), c.Request().Header.Get(echo.HeaderXRequestID))
			c.Response().Header().Set(echo.HeaderXRequestID, rc.RequestID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			rc.Logger.Info("request completed",
				slog.String(observability.LogFieldMethod, c.Request().Method),
				slog.String(observability.LogFieldPath, c.Request().URL.Path),
				slog.Int(observability.LogFieldStatus, c.Response().Status),
				slog.Int64(observability.LogFieldDuration, rc.Duration().Milliseconds()),
			)
			return nil
		}
	}
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown server", slog.String("error", err.Error()))
	}
	if err := s.Store.Close(); err != nil {
		slog.Error("failed to close store", slog.String("error", err.Error()))
	}
	slog.Info("server shutdown")
}
