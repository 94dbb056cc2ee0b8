package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/spendly/internal/pkg/models"
)

// UserRepo implements users.UserRepo over sqlx
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}
