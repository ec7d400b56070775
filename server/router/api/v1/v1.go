package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/barterhub/barterhub/internal/profile"
	"github.com/barterhub/barterhub/server/auth"
	apperrors "github.com/barterhub/barterhub/server/internal/errors"
	"github.com/barterhub/barterhub/server/middleware"
	"github.com/barterhub/barterhub/server/service/matching"
	"github.com/barterhub/barterhub/store"
)

const (
	// userIDContextKey is where the auth middleware stores the caller's user id.
	userIDContextKey = "user-id"

	// Recommendation requests are throttled per user.
	recommendationRatePerMinute = 10
)

// APIV1Service wires the HTTP surface to the services.
type APIV1Service struct {
	Secret          string
	Profile         *profile.Profile
	Store           *store.Store
	MatchingService *matching.Service

	recommendationLimiter *middleware.RateLimiter
	logger                *slog.Logger
}

// NewAPIV1Service creates the v1 API service.
func NewAPIV1Service(secret string, profile *profile.Profile, store *store.Store, logger *slog.Logger) *APIV1Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIV1Service{
		Secret:                secret,
		Profile:               profile,
		Store:                 store,
		MatchingService:       matching.NewService(store, logger),
		recommendationLimiter: middleware.NewRateLimiter(rate.Limit(float64(recommendationRatePerMinute)/60.0), recommendationRatePerMinute),
		logger:                logger,
	}
}

// Register mounts all v1 routes on the echo instance.
func (s *APIV1Service) Register(e *echo.Echo) {
	apiV1 := e.Group("/api/v1")

	apiV1.POST("/auth/signup", s.SignUp)
	apiV1.POST("/auth/signin", s.SignIn)

	authed := apiV1.Group("", s.authMiddleware)
	authed.GET("/me", s.GetCurrentUser)

	authed.POST("/items", s.CreateItem)
	authed.GET("/items", s.ListItems)
	authed.GET("/items/:uid", s.GetItem)
	authed.PATCH("/items/:uid", s.UpdateItem)
	authed.DELETE("/items/:uid", s.DeleteItem)

	authed.POST("/exchanges", s.CreateExchange)
	authed.GET("/exchanges", s.ListExchanges)
	authed.PATCH("/exchanges/:id", s.RespondExchange)

	authed.GET("/recommendations", s.GetRecommendations, s.recommendationRateLimit)
	authed.GET("/preferences", s.GetPreferences)
	authed.POST("/preferences", s.SavePreferences)
}

// authMiddleware authenticates the bearer token and stashes the user id.
func (s *APIV1Service) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, _, err := auth.Authenticate(c.Request().Header.Get("Authorization"), s.Secret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		c.Set(userIDContextKey, userID)
		return next(c)
	}
}

// recommendationRateLimit throttles recommendation requests per user.
func (s *APIV1Service) recommendationRateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := currentUserID(c)
		if !s.recommendationLimiter.Allow(rateLimitKey(userID)) {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many recommendation requests")
		}
		return next(c)
	}
}

func rateLimitKey(userID int32) string {
	return "recommendations:" + strconv.FormatInt(int64(userID), 10)
}

func currentUserID(c echo.Context) int32 {
	if v, ok := c.Get(userIDContextKey).(int32); ok {
		return v
	}
	return 0
}

// toHTTPError maps a service error to an echo HTTP error.
func toHTTPError(err error) *echo.HTTPError {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeNotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case apperrors.ErrCodeInvalidArgument:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case apperrors.ErrCodeUnauthorized:
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case apperrors.ErrCodeAlreadyExists:
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case apperrors.ErrCodeRateLimitExceeded:
		return echo.NewHTTPError(http.StatusTooManyRequests, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
