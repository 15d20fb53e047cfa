package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"faqdesk/internal/models"

	"github.com/google/uuid"
)

type FAQSQLite struct {
	db *sql.DB
}

func NewFAQSQLite(db *sql.DB) *FAQSQLite {
	return &FAQSQLite{db: db}
}

var _ FAQRepo = (*FAQSQLite)(nil)

const (
	faqColumns = `id, image, image_name, question, answer, created_at, updated_at`

	listFAQsSQL      = `SELECT ` + faqColumns + ` FROM faqs ORDER BY created_at ASC, id ASC`
	selectFAQByIDSQL = `SELECT ` + faqColumns + ` FROM faqs WHERE id = ?`
	insertFAQSQL     = `INSERT INTO faqs (` + faqColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	updateFAQSQL     = `UPDATE faqs SET image = ?, image_name = ?, question = ?, answer = ?, updated_at = ? WHERE id = ?`
	deleteFAQSQL     = `DELETE FROM faqs WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFAQ(s rowScanner) (models.FAQ, error) {
	var f models.FAQ
	if err := s.Scan(&f.ID, &f.Image, &f.ImageName, &f.Question, &f.Answer, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return models.FAQ{}, err
	}
	f.CreatedAt = f.CreatedAt.UTC()
	f.UpdatedAt = f.UpdatedAt.UTC()
	return f, nil
}

// List returns every FAQ, oldest first.
func (r *FAQSQLite) List(ctx context.Context) ([]models.FAQ, error) {
	rows, err := r.db.QueryContext(ctx, listFAQsSQL)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	out := make([]models.FAQ, 0, 16)
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate faqs: %w", err)
	}
	return out, nil
}

func (r *FAQSQLite) GetByID(ctx context.Context, id string) (models.FAQ, error) {
	f, err := scanFAQ(r.db.QueryRowContext(ctx, selectFAQByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FAQ{}, ErrFAQNotFound
		}
		return models.FAQ{}, fmt.Errorf("select faq %q: %w", id, err)
	}
	return f, nil
}

// Create stores a new FAQ and returns it with its generated id.
func (r *FAQSQLite) Create(ctx context.Context, in models.FAQFields) (models.FAQ, error) {
	now := time.Now().UTC()
	f := models.FAQ{
		ID:        uuid.NewString(),
		Image:     in.Image,
		ImageName: in.ImageName,
		Question:  in.Question,
		Answer:    in.Answer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := r.db.ExecContext(ctx, insertFAQSQL,
		f.ID, f.Image, f.ImageName, f.Question, f.Answer, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return models.FAQ{}, fmt.Errorf("insert faq: %w", err)
	}
	return f, nil
}

// Replace overwrites every writable field of the FAQ with the given id.
// SQLite counts rows matched by WHERE as affected, so zero means the id is missing.
func (r *FAQSQLite) Replace(ctx context.Context, id string, in models.FAQFields) (models.FAQ, error) {
	res, err := r.db.ExecContext(ctx, updateFAQSQL,
		in.Image, in.ImageName, in.Question, in.Answer, time.Now().UTC(), id)
	if err != nil {
		return models.FAQ{}, fmt.Errorf("update faq %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.FAQ{}, fmt.Errorf("rows affected for faq %q: %w", id, err)
	}
	if n == 0 {
		return models.FAQ{}, ErrFAQNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *FAQSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteFAQSQL, id)
	if err != nil {
		return fmt.Errorf("delete faq %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for faq %q: %w", id, err)
	}
	if n == 0 {
		return ErrFAQNotFound
	}
	return nil
}
