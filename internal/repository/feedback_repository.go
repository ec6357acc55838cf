package repository

import (
	"context"
	"database/sql"

	"github.com/Marcob7/uitjes-backend/internal/model"
)

// FeedbackRepo persists user feedback submissions.  Records are
// write-once; there is no update or delete path.
type FeedbackRepo struct {
	db *sql.DB
}

func NewFeedbackRepo(db *sql.DB) *FeedbackRepo { return &FeedbackRepo{db: db} }

// Create inserts a feedback row and populates the generated ID and
// CreatedAt on the passed record.
func (r *FeedbackRepo) Create(ctx context.Context, f *model.Feedback) error {
	const q = "INSERT INTO feedback (message, email, page_url, user_agent) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, f.Message, f.Email, f.PageURL, f.UserAgent)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)

	const sel = "SELECT created_at FROM feedback WHERE id = ?"
	return r.db.QueryRowContext(ctx, sel, f.ID).Scan(&f.CreatedAt)
}
