package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/barterhub/barterhub/server/service/matching"
	"github.com/barterhub/barterhub/store"
)

const (
	minRadiusKm = 1
	maxRadiusKm = 1000
)

type savePreferencesRequest struct {
	PreferredCategories []string `json:"preferredCategories"`
	DislikedCategories  []string `json:"dislikedCategories"`
	PreferredConditions []string `json:"preferredConditions"`
	Locale              string   `json:"locale"`
	Country             string   `json:"country"`
	RadiusKm            *int32   `json:"radiusKm"`
}

type preferencesResponse struct {
	PreferredCategories []string `json:"preferredCategories"`
	DislikedCategories  []string `json:"dislikedCategories"`
	PreferredConditions []string `json:"preferredConditions"`
	Locale              string   `json:"locale"`
	Country             string   `json:"country"`
	RadiusKm            *int32   `json:"radiusKm"`
	UpdatedTs           int64    `json:"updatedTs"`
}

func toPreferencesResponse(preferences *store.UserPreferences) *preferencesResponse {
	return &preferencesResponse{
		PreferredCategories: preferences.PreferredCategories,
		DislikedCategories:  preferences.DislikedCategories,
		PreferredConditions: preferences.PreferredConditions,
		Locale:              preferences.Locale,
		Country:             preferences.Country,
		RadiusKm:            preferences.RadiusKm,
		UpdatedTs:           preferences.UpdatedTs,
	}
}

// GetRecommendations returns personalized, diversified item recommendations.
// The limit parameter is validated here so the engine can trust its input.
func (s *APIV1Service) GetRecommendations(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	limit := matching.DefaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > matching.MaxLimit {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 50")
		}
		limit = parsed
	}

	result, err := s.MatchingService.GetRecommendations(ctx, userID, limit)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetPreferences returns the caller's stored preference profile.
func (s *APIV1Service) GetPreferences(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	preferences, err := s.MatchingService.GetPreferences(ctx, userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toPreferencesResponse(preferences))
}

// SavePreferences replaces the caller's preference profile.
func (s *APIV1Service) SavePreferences(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	request := &savePreferencesRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if request.RadiusKm != nil && (*request.RadiusKm < minRadiusKm || *request.RadiusKm > maxRadiusKm) {
		return echo.NewHTTPError(http.StatusBadRequest, "radiusKm must be between 1 and 1000")
	}

	preferences, err := s.MatchingService.SavePreferences(ctx, userID, &matching.SavePreferencesInput{
		PreferredCategories: request.PreferredCategories,
		DislikedCategories:  request.DislikedCategories,
		PreferredConditions: request.PreferredConditions,
		Locale:              request.Locale,
		Country:             request.Country,
		RadiusKm:            request.RadiusKm,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toPreferencesResponse(preferences))
}
