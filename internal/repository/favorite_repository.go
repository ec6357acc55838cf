package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Marcob7/uitjes-backend/internal/model"
)

// FavoriteRepo manages the per-user favorites association.  Adds are
// idempotent and removes are no-ops when the row is already gone, so
// handlers never have to special-case repeats.
type FavoriteRepo struct {
	db *sql.DB
}

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

// GetOrCreate returns the favorite pairing (user, event), creating it
// when absent.  The boolean reports whether a new row was created.  A
// concurrent insert racing on the unique (user_id, event_id) key falls
// back to re-reading the winner's row.
func (r *FavoriteRepo) GetOrCreate(ctx context.Context, userID, eventID uint64) (*model.Favorite, bool, error) {
	fav, err := r.get(ctx, userID, eventID)
	if err == nil {
		return fav, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	const ins = "INSERT INTO favorites (user_id, event_id) VALUES (?, ?)"
	res, err := r.db.ExecContext(ctx, ins, userID, eventID)
	if err != nil {
		// duplicate key: someone beat us to it
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			fav, err := r.get(ctx, userID, eventID)
			return fav, false, err
		}
		return nil, false, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, false, err
	}
	fav, err = r.getByID(ctx, uint64(id))
	if err != nil {
		return nil, false, err
	}
	return fav, true, nil
}

// Delete removes the favorite if it exists.  Missing rows are not an
// error; the operation is idempotent by design.
func (r *FavoriteRepo) Delete(ctx context.Context, userID, eventID uint64) error {
	const q = "DELETE FROM favorites WHERE user_id = ? AND event_id = ?"
	_, err := r.db.ExecContext(ctx, q, userID, eventID)
	return err
}

// ListByUser returns the user's favorites newest-first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Favorite, error) {
	const q = `SELECT id, user_id, event_id, created_at
	           FROM favorites WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.Favorite
	for rows.Next() {
		f := new(model.Favorite)
		if err := rows.Scan(&f.ID, &f.UserID, &f.EventID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEventsByUser returns the user's favorited events as full API
// rows, ordered by when they were favorited (newest first).
func (r *FavoriteRepo) ListEventsByUser(ctx context.Context, userID uint64) ([]EventRow, error) {
	const q = `SELECT e.id, e.title, c.slug, v.name,
	       e.start_at, e.end_at, e.date_text, e.is_free, e.price_min, e.source_url
	  FROM favorites f
	  JOIN events e ON e.id = f.event_id
	  JOIN cities c ON c.id = e.city_id
	  LEFT JOIN venues v ON v.id = e.venue_id
	  WHERE f.user_id = ?
	  ORDER BY f.created_at DESC, f.id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []EventRow{}
	for rows.Next() {
		row, err := scanEventRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *FavoriteRepo) get(ctx context.Context, userID, eventID uint64) (*model.Favorite, error) {
	const q = "SELECT id, user_id, event_id, created_at FROM favorites WHERE user_id = ? AND event_id = ?"
	var f model.Favorite
	err := r.db.QueryRowContext(ctx, q, userID, eventID).Scan(&f.ID, &f.UserID, &f.EventID, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FavoriteRepo) getByID(ctx context.Context, id uint64) (*model.Favorite, error) {
	const q = "SELECT id, user_id, event_id, created_at FROM favorites WHERE id = ?"
	var f model.Favorite
	err := r.db.QueryRowContext(ctx, q, id).Scan(&f.ID, &f.UserID, &f.EventID, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
