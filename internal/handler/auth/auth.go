// File: internal/handler/auth/auth.go
package auth

import (
	"net/http"
	"strings"
	"time"

	"worklog/internal/api"
	"worklog/internal/database"
	"worklog/internal/middleware"
	"worklog/internal/service"
	"worklog/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail   = store.GetUserByEmail
	getUserByID      = store.GetUserByID
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

const tokenTTL = 24 * time.Hour

// @Summary     Log in with email and password
// @Description Verifies credentials and returns a bearer token with the account profile
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		if err := authenticateUser(c.Request().Context(), *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(*user, tokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			User: api.UserResponse{
				ID:          user.ID,
				Name:        user.Name,
				Email:       user.Email,
				Role:        user.Role,
				TargetMoney: user.TargetMoney,
				CreatedAt:   user.CreatedAt,
			},
		})
	}
}

// @Summary     Get the authenticated account
// @Description Returns the profile matching the bearer token
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusOK, api.UserResponse{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Role:        user.Role,
			TargetMoney: user.TargetMoney,
			CreatedAt:   user.CreatedAt,
		})
	}
}

// @Summary     Log out
// @Description Stateless acknowledgment; the token simply expires on its own
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "logged out"})
	}
}
