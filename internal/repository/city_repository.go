package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Marcob7/uitjes-backend/internal/model"
)

// CityRepo encapsulates all database queries related to cities.  Cities
// are written rarely (admin endpoint, seed scripts) and read on every
// import run and city-filtered event query.
type CityRepo struct {
	db *sql.DB
}

// NewCityRepo constructs a CityRepo with the provided DB handle.
func NewCityRepo(db *sql.DB) *CityRepo {
	return &CityRepo{db: db}
}

// Create inserts a new city.  On success the ID field is populated with
// the auto-generated value.
func (r *CityRepo) Create(ctx context.Context, c *model.City) error {
	const q = "INSERT INTO cities (name, slug) VALUES (?, ?)"
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Slug)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetBySlug fetches a city by its unique slug.  Returns ErrNotFound when
// no such city exists; the import job treats that as fatal because it
// never creates cities on its own.
func (r *CityRepo) GetBySlug(ctx context.Context, slug string) (*model.City, error) {
	const q = "SELECT id, name, slug FROM cities WHERE slug = ?"
	var c model.City
	if err := r.db.QueryRowContext(ctx, q, slug).Scan(&c.ID, &c.Name, &c.Slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListAll returns all cities ordered by name.
func (r *CityRepo) ListAll(ctx context.Context) ([]*model.City, error) {
	const q = "SELECT id, name, slug FROM cities ORDER BY name"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*model.City
	for rows.Next() {
		c := new(model.City)
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
