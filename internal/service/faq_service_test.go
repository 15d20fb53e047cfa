package service

import (
	"context"
	"errors"
	"testing"

	"faqdesk/internal/models"
	"faqdesk/internal/repository"

	"github.com/google/uuid"
)

// fakeFAQRepo records calls and returns configured outputs.
type fakeFAQRepo struct {
	faq   models.FAQ
	list  []models.FAQ
	err   error
	calls int

	gotID     string
	gotFields models.FAQFields
}

func (f *fakeFAQRepo) List(context.Context) ([]models.FAQ, error) {
	f.calls++
	return f.list, f.err
}

func (f *fakeFAQRepo) GetByID(_ context.Context, id string) (models.FAQ, error) {
	f.calls++
	f.gotID = id
	return f.faq, f.err
}

func (f *fakeFAQRepo) Create(_ context.Context, in models.FAQFields) (models.FAQ, error) {
	f.calls++
	f.gotFields = in
	return f.faq, f.err
}

func (f *fakeFAQRepo) Replace(_ context.Context, id string, in models.FAQFields) (models.FAQ, error) {
	f.calls++
	f.gotID = id
	f.gotFields = in
	return f.faq, f.err
}

func (f *fakeFAQRepo) Delete(_ context.Context, id string) error {
	f.calls++
	f.gotID = id
	return f.err
}

func TestFAQService_InvalidIDNeverReachesStore(t *testing.T) {
	repo := &fakeFAQRepo{}
	svc := NewFAQService(repo)
	ctx := context.Background()
	fields := models.FAQFields{Question: "Q", Answer: "A"}

	if _, err := svc.GetByID(ctx, "not-a-uuid"); !errors.Is(err, repository.ErrFAQNotFound) {
		t.Fatalf("GetByID: expected ErrFAQNotFound, got %v", err)
	}
	if _, err := svc.Replace(ctx, "64f1c0ffee", fields); !errors.Is(err, repository.ErrFAQNotFound) {
		t.Fatalf("Replace: expected ErrFAQNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, ""); !errors.Is(err, repository.ErrFAQNotFound) {
		t.Fatalf("Delete: expected ErrFAQNotFound, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("store should not be touched, calls=%d", repo.calls)
	}
}

func TestFAQService_RequiresQuestionAndAnswer(t *testing.T) {
	repo := &fakeFAQRepo{}
	svc := NewFAQService(repo)
	id := uuid.NewString()

	cases := []models.FAQFields{
		{Question: "", Answer: "A"},
		{Question: "Q", Answer: "   "},
	}
	for _, f := range cases {
		if _, err := svc.Create(context.Background(), f); !errors.Is(err, ErrInvalidFAQ) {
			t.Fatalf("Create(%+v): expected ErrInvalidFAQ, got %v", f, err)
		}
		if _, err := svc.Replace(context.Background(), id, f); !errors.Is(err, ErrInvalidFAQ) {
			t.Fatalf("Replace(%+v): expected ErrInvalidFAQ, got %v", f, err)
		}
	}
	if repo.calls != 0 {
		t.Fatalf("store should not be touched, calls=%d", repo.calls)
	}
}

func TestFAQService_DelegatesToStore(t *testing.T) {
	id := uuid.NewString()
	repo := &fakeFAQRepo{faq: models.FAQ{ID: id, Question: "Q", Answer: "A"}}
	svc := NewFAQService(repo)

	in := models.FAQFields{Image: "i", Question: "Q", Answer: "A"}
	got, err := svc.Replace(context.Background(), id, in)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if got.ID != id || repo.gotID != id || repo.gotFields != in {
		t.Fatalf("unexpected delegation: got=%+v repoID=%q fields=%+v", got, repo.gotID, repo.gotFields)
	}

	repo.err = repository.ErrFAQNotFound
	if err := svc.Delete(context.Background(), id); !errors.Is(err, repository.ErrFAQNotFound) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
