package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/barterhub/barterhub/server/auth"
	"github.com/barterhub/barterhub/store"
)

type signUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Country     string `json:"country"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *userResponse `json:"user"`
}

type userResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Country     string `json:"country"`
	CreatedTs   int64  `json:"createdTs"`
}

func toUserResponse(user *store.User) *userResponse {
	return &userResponse{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Country:     user.Country,
		CreatedTs:   user.CreatedTs,
	}
}

// SignUp registers a new user and returns an access token.
func (s *APIV1Service) SignUp(c echo.Context) error {
	ctx := c.Request().Context()

	request := &signUpRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	request.Email = strings.TrimSpace(strings.ToLower(request.Email))
	if request.Email == "" || !strings.Contains(request.Email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "a valid email is required")
	}
	if len(request.Password) < 6 {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}

	existing, err := s.Store.GetUser(ctx, &store.FindUser{Email: &request.Email})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to look up user").SetInternal(err)
	}
	if existing != nil {
		return echo.NewHTTPError(http.StatusConflict, "email already registered")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to hash password").SetInternal(err)
	}

	user, err := s.Store.CreateUser(ctx, &store.User{
		UID:          shortuuid.New(),
		Email:        request.Email,
		DisplayName:  request.DisplayName,
		PasswordHash: string(passwordHash),
		Country:      request.Country,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create user").SetInternal(err)
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, user.Email, s.Secret, time.Now().Add(auth.AccessTokenDuration))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate access token").SetInternal(err)
	}

	return c.JSON(http.StatusOK, &authResponse{
		AccessToken: accessToken,
		User:        toUserResponse(user),
	})
}

// SignIn verifies credentials and returns an access token.
func (s *APIV1Service) SignIn(c echo.Context) error {
	ctx := c.Request().Context()

	request := &signInRequest{}
	if err := c.Bind(request); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	email := strings.TrimSpace(strings.ToLower(request.Email))

	user, err := s.Store.GetUser(ctx, &store.FindUser{Email: &email})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to look up user").SetInternal(err)
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, user.Email, s.Secret, time.Now().Add(auth.AccessTokenDuration))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate access token").SetInternal(err)
	}

	return c.JSON(http.StatusOK, &authResponse{
		AccessToken: accessToken,
		User:        toUserResponse(user),
	})
}

// GetCurrentUser returns the authenticated user.
func (s *APIV1Service) GetCurrentUser(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	user, err := s.Store.GetUser(ctx, &store.FindUser{ID: &userID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to look up user").SetInternal(err)
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}
