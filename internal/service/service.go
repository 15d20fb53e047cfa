package service

import (
	"context"

	"faqdesk/internal/models"
	"faqdesk/internal/repository"
	"faqdesk/internal/translator"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (models.User, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// FAQ exposes CRUD over the FAQ collection.
type FAQ interface {
	ListAll(ctx context.Context) ([]models.FAQ, error)
	GetByID(ctx context.Context, id string) (models.FAQ, error)
	Create(ctx context.Context, f models.FAQFields) (models.FAQ, error)
	Replace(ctx context.Context, id string, f models.FAQFields) (models.FAQ, error)
	Delete(ctx context.Context, id string) error
}

// Translation relays text to the external translation provider.
type Translation interface {
	Detect(ctx context.Context, text string) (translator.Response, error)
	Translate(ctx context.Context, text, targetLang string) (translator.Response, error)
}

// Service aggregates all sub-services used by the HTTP layer.
type Service struct {
	Authorization
	FAQ
	Translation
}

func NewService(repos *repository.Repository, gateway Translation, auth AuthOptions) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, auth),
		FAQ:           NewFAQService(repos.FAQRepo),
		Translation:   gateway,
	}
}
