// Package fixture is the static data source the store is seeded from.  The
// catalogs are fixed; only the seat grid has non-deterministic content
// (randomized pre-booked seats), its shape is always 8 rows × 12 seats.
package fixture

import (
    "fmt"
    "math/rand"

    "github.com/ticketverse/booking/internal/model"
)

// Cities lists every city with at least one theater.
var Cities = []string{"New York", "Los Angeles", "Chicago", "Houston", "Miami"}

// Movies is the full movie catalog.
var Movies = []model.Movie{
    {
        ID:        "movie1",
        Title:     "Inception",
        PosterURL: "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_.jpg",
        Duration:  "2h 28m",
        Genre:     "Sci-Fi, Action",
        Rating:    "8.8/10",
        Language:  "English",
    },
    {
        ID:        "movie2",
        Title:     "The Dark Knight",
        PosterURL: "https://m.media-amazon.com/images/M/MV5BMTMxNTMwODM0NF5BMl5BanBnXkFtZTcwODAyMTk2Mw@@._V1_.jpg",
        Duration:  "2h 32m",
        Genre:     "Action, Crime, Drama",
        Rating:    "9.0/10",
        Language:  "English",
    },
    {
        ID:        "movie3",
        Title:     "Interstellar",
        PosterURL: "https://m.media-amazon.com/images/M/MV5BZjdkOTU3MDktN2IxOS00OGEyLWFmMjktY2FiMmZkNWIyODZiXkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_.jpg",
        Duration:  "2h 49m",
        Genre:     "Adventure, Drama, Sci-Fi",
        Rating:    "8.6/10",
        Language:  "English",
    },
    {
        ID:        "movie4",
        Title:     "Dune",
        PosterURL: "https://m.media-amazon.com/images/M/MV5BN2FjNmEyNWMtYzM0ZS00NjIyLTg5YzYtYThlMGVjNzE1OGViXkEyXkFqcGdeQXVyMTkxNjUyNQ@@._V1_FMjpg_UX1000_.jpg",
        Duration:  "2h 35m",
        Genre:     "Adventure, Drama, Sci-Fi",
        Rating:    "8.0/10",
        Language:  "English",
    },
    {
        ID:        "movie5",
        Title:     "The Avengers",
        PosterURL: "https://m.media-amazon.com/images/M/MV5BNDYxNjQyMjAtNTdiOS00NGYwLWFmNTAtNThmYjU5ZGI2YTI1XkEyXkFqcGdeQXVyMTMxODk2OTU@._V1_.jpg",
        Duration:  "2h 23m",
        Genre:     "Action, Adventure, Sci-Fi",
        Rating:    "8.0/10",
        Language:  "English",
    },
    {
        ID:        "movie6",
        Title:     "Joker",
        PosterURL: "https://m.media-amazon.com/images/M/MV5BNGVjNWI4ZGUtNzE0MS00YTJmLWE0ZDctN2ZiYTk2YmI3NTYyXkEyXkFqcGdeQXVyMTkxNjUyNQ@@._V1_.jpg",
        Duration:  "2h 2m",
        Genre:     "Crime, Drama, Thriller",
        Rating:    "8.4/10",
        Language:  "English",
    },
}

// Theaters maps each city to its venues.
var Theaters = map[string][]model.Theater{
    "New York": {
        {ID: "ny-theater1", Name: "AMC Empire 25", Address: "234 W 42nd St", City: "New York"},
        {ID: "ny-theater2", Name: "Regal E-Walk", Address: "247 W 42nd St", City: "New York"},
        {ID: "ny-theater3", Name: "IFC Center", Address: "323 6th Ave", City: "New York"},
    },
    "Los Angeles": {
        {ID: "la-theater1", Name: "TCL Chinese Theatre", Address: "6925 Hollywood Blvd", City: "Los Angeles"},
        {ID: "la-theater2", Name: "ArcLight Hollywood", Address: "6360 Sunset Blvd", City: "Los Angeles"},
        {ID: "la-theater3", Name: "The Landmark", Address: "10850 W Pico Blvd", City: "Los Angeles"},
    },
    "Chicago": {
        {ID: "chi-theater1", Name: "AMC River East 21", Address: "322 E Illinois St", City: "Chicago"},
        {ID: "chi-theater2", Name: "Showplace ICON", Address: "1011 S Delano Ct", City: "Chicago"},
    },
    "Houston": {
        {ID: "hou-theater1", Name: "Edwards Greenway Grand Palace", Address: "3839 Weslayan St", City: "Houston"},
        {ID: "hou-theater2", Name: "AMC Studio 30", Address: "2949 Dunvale Rd", City: "Houston"},
    },
    "Miami": {
        {ID: "mia-theater1", Name: "Silverspot Cinema", Address: "300 SE 3rd St", City: "Miami"},
        {ID: "mia-theater2", Name: "AMC Aventura 24", Address: "19501 Biscayne Blvd", City: "Miami"},
    },
}

// AllTheaters flattens the per-city map into a single slice in city order.
func AllTheaters() []model.Theater {
    var all []model.Theater
    for _, city := range Cities {
        all = append(all, Theaters[city]...)
    }
    return all
}

// ShowTimes is the catalog of screening slots.  Prices are in cents.
var ShowTimes = []model.ShowTime{
    {ID: "st1", Time: "10:00 AM", Date: "2025-04-10", PriceCents: 1050},
    {ID: "st2", Time: "1:30 PM", Date: "2025-04-10", PriceCents: 1250},
    {ID: "st3", Time: "4:15 PM", Date: "2025-04-10", PriceCents: 1400},
    {ID: "st4", Time: "7:00 PM", Date: "2025-04-10", PriceCents: 1550},
    {ID: "st5", Time: "9:45 PM", Date: "2025-04-10", PriceCents: 1550},
    {ID: "st6", Time: "11:00 AM", Date: "2025-04-11", PriceCents: 1050},
    {ID: "st7", Time: "2:00 PM", Date: "2025-04-11", PriceCents: 1250},
    {ID: "st8", Time: "5:15 PM", Date: "2025-04-11", PriceCents: 1400},
}

const (
    seatRows    = "ABCDEFGH"
    seatsPerRow = 12

    // bookedChance is the probability a generated seat starts out booked,
    // so the auditorium never looks suspiciously empty.
    bookedChance = 0.2
)

// GenerateSeats builds the fixed 8×12 auditorium grid.  Seat IDs are the
// row letter followed by the 1-based seat number ("A1" … "H12"), 96 in
// total.  Which seats start out booked is random on every call.
func GenerateSeats() []model.Seat {
    seats := make([]model.Seat, 0, len(seatRows)*seatsPerRow)
    for _, row := range seatRows {
        for n := 1; n <= seatsPerRow; n++ {
            status := model.SeatAvailable
            if rand.Float64() < bookedChance {
                status = model.SeatBooked
            }
            seats = append(seats, model.Seat{
                ID:         fmt.Sprintf("%c%d", row, n),
                RowLabel:   string(row),
                SeatNumber: n,
                Status:     status,
            })
        }
    }
    return seats
}
