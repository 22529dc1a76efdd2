package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"sweet-paradise/config"
	"sweet-paradise/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT id, name, email, is_admin, created_at FROM users WHERE id = $1`

	var u models.User
	err := config.DB.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
