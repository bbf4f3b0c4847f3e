package model

import "time"

// Booking records a completed checkout: which user booked which seats for
// which movie, theater and showtime, and the total paid.  The reference
// ("BK-..." form) is generated at confirmation time and doubles as the
// primary key.  Seats live in the booking_seats join table.
//
// Fields:
//  Reference  – generated booking reference, primary key.
//  UserID     – user who completed the checkout.
//  MovieID    – selected movie.
//  TheaterID  – selected theater.
//  ShowTimeID – selected showtime.
//  SeatIDs    – seats booked under this reference.
//  TotalCents – seat count × showtime price, in cents.
//  CreatedAt  – confirmation timestamp.
type Booking struct {
    Reference  string    `json:"reference"`
    UserID     string    `json:"-"`
    MovieID    string    `json:"movie_id"`
    TheaterID  string    `json:"theater_id"`
    ShowTimeID string    `json:"showtime_id"`
    SeatIDs    []string  `json:"seats"`
    TotalCents int64     `json:"total_cents"`
    CreatedAt  time.Time `json:"created_at"`
}
