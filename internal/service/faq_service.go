package service

import (
	"context"
	"errors"
	"strings"

	"faqdesk/internal/models"
	"faqdesk/internal/repository"

	"github.com/google/uuid"
)

var ErrInvalidFAQ = errors.New("question and answer are required")

type FAQService struct {
	faqRepo repository.FAQRepo
}

func NewFAQService(repo repository.FAQRepo) *FAQService {
	return &FAQService{faqRepo: repo}
}

// validID reports whether id could have been issued by the store.
// Anything else cannot exist, so callers get ErrFAQNotFound without a query.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func validateFields(f models.FAQFields) error {
	if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
		return ErrInvalidFAQ
	}
	return nil
}

func (s *FAQService) ListAll(ctx context.Context) ([]models.FAQ, error) {
	return s.faqRepo.List(ctx)
}

func (s *FAQService) GetByID(ctx context.Context, id string) (models.FAQ, error) {
	if !validID(id) {
		return models.FAQ{}, repository.ErrFAQNotFound
	}
	return s.faqRepo.GetByID(ctx, id)
}

func (s *FAQService) Create(ctx context.Context, f models.FAQFields) (models.FAQ, error) {
	if err := validateFields(f); err != nil {
		return models.FAQ{}, err
	}
	return s.faqRepo.Create(ctx, f)
}

// Replace overwrites all fields; optional fields missing from f end up empty.
func (s *FAQService) Replace(ctx context.Context, id string, f models.FAQFields) (models.FAQ, error) {
	if !validID(id) {
		return models.FAQ{}, repository.ErrFAQNotFound
	}
	if err := validateFields(f); err != nil {
		return models.FAQ{}, err
	}
	return s.faqRepo.Replace(ctx, id, f)
}

func (s *FAQService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repository.ErrFAQNotFound
	}
	return s.faqRepo.Delete(ctx, id)
}
