// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// BookingConfirmedEvent is published after a checkout transaction commits.
// It carries enough denormalized detail for downstream consumers to log
// and send the confirmation email without querying the store.
type BookingConfirmedEvent struct {
	Reference   string   `json:"reference"`
	UserID      string   `json:"user_id"`
	UserName    string   `json:"user_name"`
	UserEmail   string   `json:"user_email"`
	City        string   `json:"city"`
	TheaterID   string   `json:"theater_id"`
	TheaterName string   `json:"theater_name"`
	MovieID     string   `json:"movie_id"`
	MovieTitle  string   `json:"movie_title"`
	ShowTimeID  string   `json:"showtime_id"`
	ShowDate    string   `json:"show_date"`
	ShowTime    string   `json:"show_time"`
	SeatIDs     []string `json:"seats"`
	TotalCents  int64    `json:"total_cents"`
	ConfirmedAt string   `json:"confirmed_at"`
}
