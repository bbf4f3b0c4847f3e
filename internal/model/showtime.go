package model

// ShowTime represents a scheduled screening slot.  Showtimes in this
// domain are deliberately theater- and movie-agnostic: the original data
// synthesized movie/theater links that never matched the user's actual
// selection, so the association lives only in the booking record.
//
// Fields:
//  ID         – primary key identifier (e.g. "st1").
//  Date       – screening date in YYYY-MM-DD form.
//  Time       – time-of-day display string (e.g. "7:00 PM").
//  PriceCents – ticket price in integer cents.
type ShowTime struct {
    ID         string `json:"id"`          // showtimes.id
    Date       string `json:"date"`        // showtimes.show_date
    Time       string `json:"time"`        // showtimes.show_time
    PriceCents int64  `json:"price_cents"` // showtimes.price_cents
}
