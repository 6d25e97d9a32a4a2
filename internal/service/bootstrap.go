// File: internal/service/bootstrap.go
package service

import (
	"context"
	"fmt"

	"worklog/internal/database"
	"worklog/internal/model"
	"worklog/internal/store"
)

const (
	defaultAdminName     = "Admin"
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "admin123"
)

var (
	adminExists  = store.AdminExists
	createUserFn = store.CreateUser
)

// EnsureDefaultAdmin seeds the default admin account when no admin row
// exists yet. Returns true when a new admin was created.
func EnsureDefaultAdmin(ctx context.Context, db database.DB) (bool, error) {
	exists, err := adminExists(ctx, db)
	if err != nil {
		return false, fmt.Errorf("EnsureDefaultAdmin: %w", err)
	}
	if exists {
		return false, nil
	}

	hash, err := HashPassword(defaultAdminPassword)
	if err != nil {
		return false, fmt.Errorf("EnsureDefaultAdmin: %w", err)
	}

	if _, err := createUserFn(ctx, db, &model.User{
		Name:         defaultAdminName,
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}); err != nil {
		return false, fmt.Errorf("EnsureDefaultAdmin: %w", err)
	}
	return true, nil
}
