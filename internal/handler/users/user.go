// File: internal/handler/users/user.go
package users

import (
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"worklog/internal/api"
	"worklog/internal/database"
	"worklog/internal/middleware"
	"worklog/internal/model"
	"worklog/internal/service"
	"worklog/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword       = service.HashPassword
	listUsers          = store.ListUsers
	createUser         = store.CreateUser
	getUserByID        = store.GetUserByID
	updateUser         = store.UpdateUser
	updateUserPassword = store.UpdateUserPassword
	deleteUser         = store.DeleteUser
)

const defaultTargetMoney = 3000

func toResponse(u model.User) api.UserResponse {
	return api.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		TargetMoney: u.TargetMoney,
		CreatedAt:   u.CreatedAt,
	}
}

// @Summary     List all users
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, toResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Create a new user
// @Description Email is lower-cased; target_money defaults to 3000 when omitted
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.CreateUserRequest true "new user"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		target := float64(defaultTargetMoney)
		if req.TargetMoney != nil {
			target = *req.TargetMoney
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         req.Role,
			TargetMoney:  target,
		})
		if err != nil {
			if store.IsUniqueViolation(err) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already in use"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		return c.JSON(http.StatusCreated, toResponse(*user))
	}
}

// @Summary     Update a user
// @Description Replaces name, email, role and target; password changes only when provided
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user_id path int true "user ID"
// @Param       request body api.UpdateUserRequest true "updated fields"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		if _, err := getUserByID(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		if err := updateUser(c.Request().Context(), db, &model.User{
			ID:          id,
			Name:        req.Name,
			Email:       req.Email,
			Role:        req.Role,
			TargetMoney: req.TargetMoney,
		}); err != nil {
			if store.IsUniqueViolation(err) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already in use"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		if req.Password != "" {
			hash, err := hashPassword(req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
			}
			if err := updateUserPassword(c.Request().Context(), db, id, hash); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
			}
		}

		updated, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusOK, toResponse(*updated))
	}
}

// @Summary     Delete a user
// @Description Admin accounts and the caller's own account cannot be deleted
// @Tags        users
// @Produce     json
// @Param       user_id path int true "user ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{user_id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		if claims.UserID == id {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "cannot delete your own account"})
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if store.IsNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		if user.IsAdmin() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "cannot delete admin account"})
		}

		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "user deleted successfully"})
	}
}
