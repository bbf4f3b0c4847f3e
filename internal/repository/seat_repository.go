package repository // repository defines data access for seats

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions
	"strings"      // strings builds IN (...) placeholder lists
	"sync"         // sync serializes booking transactions in-process

	"github.com/ticketverse/booking/internal/model"
)

// ErrSeatNotFound is returned when a status batch names a seat id that
// does not exist.  The whole batch fails.
var ErrSeatNotFound = errors.New("seat not found")

// ErrInvalidSeatStatus is returned when a status batch carries a value
// outside the seat lifecycle.
var ErrInvalidSeatStatus = errors.New("invalid seat status")

// SeatRepo provides access to the seat grid.  Status updates are the one
// transactional write in the system: a batch is applied all-or-nothing,
// and transitions to booked carry a compare-and-swap precondition
// (current status must be available) so that two overlapping booking
// attempts can never both win the same seat.  A repo-level mutex
// serializes booking transactions on top of the store's own write lock.
type SeatRepo struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// DB exposes the underlying handle so handlers can run multi-repo
// transactions (checkout writes the booking and the seats together).
func (r *SeatRepo) DB() *sql.DB { return r.db }

// Lock takes the booking mutex.  Callers running their own checkout
// transaction hold it for the duration and release with Unlock.
func (r *SeatRepo) Lock()   { r.mu.Lock() }
func (r *SeatRepo) Unlock() { r.mu.Unlock() }

// ListAll retrieves the full seat grid ordered by row then number.
func (r *SeatRepo) ListAll(ctx context.Context) ([]model.Seat, error) {
	const q = `SELECT id, row_label, seat_number, status, updated_at
	           FROM seats
	           ORDER BY row_label, seat_number`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Seat, 0)
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.RowLabel, &s.SeatNumber, &s.Status, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a single seat.
func (r *SeatRepo) GetByID(ctx context.Context, id string) (*model.Seat, error) {
	const q = `SELECT id, row_label, seat_number, status, updated_at FROM seats WHERE id = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.RowLabel, &s.SeatNumber, &s.Status, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// CreateBulk inserts multiple seats in a single statement.  Used by the
// seeder only.
func (r *SeatRepo) CreateBulk(ctx context.Context, tx *sql.Tx, seats []model.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	query := `INSERT INTO seats (id, row_label, seat_number, status) VALUES `
	args := make([]interface{}, 0, len(seats)*4)
	for i, s := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, s.ID, s.RowLabel, s.SeatNumber, s.Status)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// FilterAvailableTx returns, within the given transaction, the subset of
// seatIDs whose current status is available.  Callers compare the result
// against their request to report which seats were lost to another
// booking.
func (r *SeatRepo) FilterAvailableTx(ctx context.Context, tx *sql.Tx, seatIDs []string) ([]string, error) {
	if len(seatIDs) == 0 {
		return []string{}, nil
	}
	query := `SELECT id FROM seats WHERE status = ? AND id IN (` + placeholders(len(seatIDs)) + `)`
	args := make([]interface{}, 0, len(seatIDs)+1)
	args = append(args, model.SeatAvailable)
	for _, id := range seatIDs {
		args = append(args, id)
	}
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	available := make([]string, 0, len(seatIDs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		available = append(available, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return available, nil
}

// CountTx returns, within the given transaction, how many of seatIDs
// exist in the grid.  Used to distinguish unknown ids from conflicts.
func (r *SeatRepo) CountTx(ctx context.Context, tx *sql.Tx, seatIDs []string) (int, error) {
	if len(seatIDs) == 0 {
		return 0, nil
	}
	query := `SELECT COUNT(*) FROM seats WHERE id IN (` + placeholders(len(seatIDs)) + `)`
	args := make([]interface{}, 0, len(seatIDs))
	for _, id := range seatIDs {
		args = append(args, id)
	}
	var n int
	err := tx.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

// BulkUpdateStatusTx sets the status of every seat in seatIDs within the
// given transaction.  Transitions to booked require the seat to still be
// available; when any seat fails the precondition the statement touches
// fewer rows than requested and ErrSeatConflict is returned, leaving the
// caller to roll back so the batch stays all-or-nothing.
func (r *SeatRepo) BulkUpdateStatusTx(ctx context.Context, tx *sql.Tx, seatIDs []string, status model.SeatStatus) error {
	if len(seatIDs) == 0 {
		return nil
	}
	if !status.Valid() {
		return ErrInvalidSeatStatus
	}
	query := `UPDATE seats SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id IN (` + placeholders(len(seatIDs)) + `)`
	args := make([]interface{}, 0, len(seatIDs)+1)
	args = append(args, status)
	for _, id := range seatIDs {
		args = append(args, id)
	}
	if status == model.SeatBooked {
		query += ` AND status = ?`
		args = append(args, model.SeatAvailable)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if int(n) != len(seatIDs) {
		// Either the id does not exist or another booking got there first.
		count, cntErr := r.CountTx(ctx, tx, seatIDs)
		if cntErr == nil && count != len(seatIDs) {
			return ErrSeatNotFound
		}
		return ErrSeatConflict
	}
	return nil
}

// UpdateStatus applies one status to a batch of seats as a single
// transaction: either every write is visible or none is.  Safe to call
// from concurrent funnel sessions targeting overlapping seat sets; the
// later transaction observes the earlier one's result and fails with
// ErrSeatConflict when it tries to book a seat that is no longer
// available.
func (r *SeatRepo) UpdateStatus(ctx context.Context, seatIDs []string, status model.SeatStatus) error {
	if len(seatIDs) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := r.BulkUpdateStatusTx(ctx, tx, seatIDs, status); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// placeholders returns n comma separated "?" markers for IN clauses.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}
