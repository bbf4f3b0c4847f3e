package model

import "time"

// SeatStatus enumerates the lifecycle of a seat.  The persisted store only
// ever holds "available" and "booked"; "selected" is a client-local state
// kept in the booking session until checkout commits it.
type SeatStatus string

const (
    SeatAvailable SeatStatus = "available"
    SeatSelected  SeatStatus = "selected"
    SeatBooked    SeatStatus = "booked"
)

// Valid reports whether s is one of the three known statuses.
func (s SeatStatus) Valid() bool {
    switch s {
    case SeatAvailable, SeatSelected, SeatBooked:
        return true
    }
    return false
}

// Seat describes one seat in the fixed auditorium grid.  The ID is derived
// from the row label and number ("A1") and (RowLabel, SeatNumber) uniquely
// determines a seat.  Booked is terminal: no un-booking path exists.
//
// Fields:
//  ID         – primary key, row label + number.
//  RowLabel   – letter designating the row (A–H).
//  SeatNumber – position within the row (1-based).
//  Status     – available, selected or booked.
//  UpdatedAt  – last status change.
type Seat struct {
    ID         string     `json:"id"`     // seats.id
    RowLabel   string     `json:"row"`    // seats.row_label
    SeatNumber int        `json:"number"` // seats.seat_number
    Status     SeatStatus `json:"status"` // seats.status
    UpdatedAt  time.Time  `json:"-"`      // seats.updated_at
}
