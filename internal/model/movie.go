package model

// Movie represents a film in the catalog.  Movies are created once by the
// seeding routine and never modified afterwards.  This struct corresponds
// to a row in the `movies` table.
//
// Fields:
//  ID        – primary key identifier (e.g. "movie1").
//  Title     – display title of the movie.
//  PosterURL – reference to the poster artwork.
//  Duration  – human-readable running time (e.g. "2h 28m").
//  Genre     – comma separated genre list.
//  Rating    – display rating (e.g. "8.8/10").
//  Language  – primary audio language.
type Movie struct {
    ID        string `json:"id"`         // movies.id
    Title     string `json:"title"`      // movies.title
    PosterURL string `json:"poster_url"` // movies.poster_url
    Duration  string `json:"duration"`   // movies.duration
    Genre     string `json:"genre"`      // movies.genre
    Rating    string `json:"rating"`     // movies.rating
    Language  string `json:"language"`   // movies.language
}
