package repository

import (
	"context"
	"database/sql"
	"errors"

	"faqdesk/internal/models"
)

// Domain errors surfaced by the stores.
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrFAQNotFound   = errors.New("faq not found")
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type FAQRepo interface {
	List(ctx context.Context) ([]models.FAQ, error)
	GetByID(ctx context.Context, id string) (models.FAQ, error)
	Create(ctx context.Context, f models.FAQFields) (models.FAQ, error)
	Replace(ctx context.Context, id string, f models.FAQFields) (models.FAQ, error)
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	Auth    Authorization
	FAQRepo FAQRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:    NewUserRepository(db),
		FAQRepo: NewFAQSQLite(db),
	}
}
