package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/barterhub/barterhub/server/internal/errors"
)

func newTestContext(t *testing.T, method, target, body string) echo.Context {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(userIDContextKey, int32(1))
	return c
}

func TestGetRecommendationsRejectsBadLimit(t *testing.T) {
	service := &APIV1Service{}

	tests := []struct {
		name  string
		limit string
	}{
		{
			name:  "Not a number",
			limit: "abc",
		},
		{
			name:  "Zero",
			limit: "0",
		},
		{
			name:  "Negative",
			limit: "-1",
		},
		{
			name:  "Above max",
			limit: "51",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, http.MethodGet, "/api/v1/recommendations?limit="+tt.limit, "")
			err := service.GetRecommendations(c)
			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestSavePreferencesRejectsBadRadius(t *testing.T) {
	service := &APIV1Service{}

	tests := []struct {
		name string
		body string
	}{
		{
			name: "Radius too small",
			body: `{"radiusKm": 0}`,
		},
		{
			name: "Radius too large",
			body: `{"radiusKm": 1001}`,
		},
		{
			name: "Malformed body",
			body: `{not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, http.MethodPost, "/api/v1/preferences", tt.body)
			err := service.SavePreferences(c)
			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "Not found",
			err:  apperrors.NotFound("missing"),
			want: http.StatusNotFound,
		},
		{
			name: "Invalid argument",
			err:  apperrors.InvalidArgument("bad input"),
			want: http.StatusBadRequest,
		},
		{
			name: "Unauthorized",
			err:  apperrors.Unauthorized("no token"),
			want: http.StatusUnauthorized,
		},
		{
			name: "Already exists",
			err:  apperrors.AlreadyExists("duplicate"),
			want: http.StatusConflict,
		},
		{
			name: "Rate limit",
			err:  apperrors.New(apperrors.ErrCodeRateLimitExceeded, "slow down"),
			want: http.StatusTooManyRequests,
		},
		{
			name: "Unclassified",
			err:  assert.AnError,
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toHTTPError(tt.err).Code)
		})
	}
}
