package database

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"theatre-booking/internal/auth"
	"theatre-booking/internal/models"
)

// Demo accounts created on first run. The passwords match the original demo
// deployment and exist for local evaluation only.
const (
	DemoUserEmail     = "user1@example.com"
	DemoUserPassword  = "password123"
	DemoAdminEmail    = "admin@example.com"
	DemoAdminPassword = "admin12345"
)

// Seed inserts the demo accounts and reference productions/performances.
// Each piece is inserted only when absent, so repeated startups are no-ops.
func Seed(ctx context.Context, db *bun.DB) error {
	if err := ensureUser(ctx, db, DemoUserEmail, "user1", DemoUserPassword, "Ivan Petrov", "+7-999-111-22-33", false); err != nil {
		return err
	}
	if err := ensureUser(ctx, db, DemoAdminEmail, "admin", DemoAdminPassword, "Theatre Administrator", "+7-999-000-00-00", true); err != nil {
		return err
	}
	return seedShows(ctx, db)
}

func ensureUser(ctx context.Context, db *bun.DB, email, login, password, fullName, phone string, isAdmin bool) error {
	exists, err := db.NewSelect().
		Model((*models.User)(nil)).
		Where("email = ?", email).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("check demo user %s: %w", email, err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password, auth.DefaultBcryptCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	user := models.User{
		Email:        email,
		Login:        login,
		PasswordHash: hash,
		FullName:     fullName,
		Phone:        phone,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}
	if _, err := db.NewInsert().Model(&user).Exec(ctx); err != nil {
		return fmt.Errorf("insert demo user %s: %w", email, err)
	}
	return nil
}

func seedShows(ctx context.Context, db *bun.DB) error {
	count, err := db.NewSelect().Model((*models.Production)(nil)).Count(ctx)
	if err != nil {
		return fmt.Errorf("count productions: %w", err)
	}
	if count > 0 {
		return nil
	}

	productions := []models.Production{
		{Title: "The Cherry Orchard"},
		{Title: "Swan Lake"},
		{Title: "Hamlet"},
	}
	if _, err := db.NewInsert().Model(&productions).Exec(ctx); err != nil {
		return fmt.Errorf("insert productions: %w", err)
	}

	base := time.Now().AddDate(0, 0, 7).Truncate(time.Hour)
	performances := []models.Performance{
		{ProductionID: productions[0].ID, StartsAt: base, Hall: "Main Hall"},
		{ProductionID: productions[0].ID, StartsAt: base.AddDate(0, 0, 3), Hall: "Main Hall"},
		{ProductionID: productions[1].ID, StartsAt: base.AddDate(0, 0, 1), Hall: "Main Hall"},
		{ProductionID: productions[1].ID, StartsAt: base.AddDate(0, 0, 8), Hall: "Main Hall"},
		{ProductionID: productions[2].ID, StartsAt: base.AddDate(0, 0, 2), Hall: "Small Stage"},
	}
	if _, err := db.NewInsert().Model(&performances).Exec(ctx); err != nil {
		return fmt.Errorf("insert performances: %w", err)
	}
	return nil
}
