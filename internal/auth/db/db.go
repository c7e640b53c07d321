package db

import (
	"context"

	"github.com/uptrace/bun"

	"theatre-booking/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// CreateUser inserts the user and populates the generated id on the model.
func (d *DB) CreateUser(ctx context.Context, user *models.User) error {
	_, err := d.Bun.NewInsert().Model(user).Exec(ctx)
	return err
}

func (d *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := d.Bun.NewSelect().
		Model(&user).
		Where("email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DB) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := d.Bun.NewSelect().
		Model(&user).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// LoginOrEmailTaken reports whether any user already holds the login or the
// email.
func (d *DB) LoginOrEmailTaken(ctx context.Context, login, email string) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.User)(nil)).
		Where("login = ?", login).
		WhereOr("email = ?", email).
		Exists(ctx)
}
