package repository

import (
	"context"
	"database/sql"
	"log"

	"github.com/ticketverse/booking/internal/fixture"
)

// Seeder populates an empty store from the fixture data source.  Seeding
// is idempotent: the movie count decides whether the store has been
// populated before, and a populated store is left untouched.
type Seeder struct {
	db        *sql.DB
	Movies    *MovieRepo
	Theaters  *TheaterRepo
	ShowTimes *ShowTimeRepo
	Seats     *SeatRepo
}

// NewSeeder constructs a Seeder over the given repositories.  All
// repositories must share the same DB handle.
func NewSeeder(db *sql.DB, m *MovieRepo, t *TheaterRepo, st *ShowTimeRepo, s *SeatRepo) *Seeder {
	return &Seeder{db: db, Movies: m, Theaters: t, ShowTimes: st, Seats: s}
}

// Seed bulk-inserts the full fixture output into all collections in one
// transaction when the store is empty.  Calling it again is a logged
// no-op.  Errors are returned to the caller: a store that cannot seed is
// a fatal startup condition, not something to log and limp past.
func (s *Seeder) Seed(ctx context.Context) error {
	count, err := s.Movies.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("store already seeded")
		return nil
	}
	log.Println("seeding store with fixture data")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := s.Movies.CreateBulk(ctx, tx, fixture.Movies); err != nil {
		return err
	}
	if err := s.Theaters.CreateBulk(ctx, tx, fixture.AllTheaters()); err != nil {
		return err
	}
	if err := s.ShowTimes.CreateBulk(ctx, tx, fixture.ShowTimes); err != nil {
		return err
	}
	if err := s.Seats.CreateBulk(ctx, tx, fixture.GenerateSeats()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	log.Println("store seeding complete")
	return nil
}
