package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Marcob7/uitjes-backend/internal/model"
)

// VenueRepo encapsulates database queries for venues.  Venues are
// created lazily by the import job; the Tx variants let the whole batch
// run inside a single transaction.
type VenueRepo struct {
	db *sql.DB
}

func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{db: db} }

// GetOrCreateTx looks up a venue by (city, name) inside the given
// transaction and inserts it with an empty address when missing.  The
// returned venue always has its ID populated.
func (r *VenueRepo) GetOrCreateTx(ctx context.Context, tx *sql.Tx, cityID uint64, name string) (*model.Venue, error) {
	const sel = "SELECT id, city_id, name, address FROM venues WHERE city_id = ? AND name = ?"
	var v model.Venue
	err := tx.QueryRowContext(ctx, sel, cityID, name).Scan(&v.ID, &v.CityID, &v.Name, &v.Address)
	if err == nil {
		return &v, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	const ins = "INSERT INTO venues (city_id, name, address) VALUES (?, ?, '')"
	res, err := tx.ExecContext(ctx, ins, cityID, name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Venue{ID: uint64(id), CityID: cityID, Name: name, Address: ""}, nil
}
