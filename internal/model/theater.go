package model

// Theater represents a venue in exactly one city.  Theaters are immutable
// after seeding.  Lookups by city use the idx_theaters_city index.
//
// Fields:
//  ID      – primary key identifier (e.g. "ny-theater1").
//  Name    – display name of the theater.
//  City    – city this theater belongs to.
//  Address – street address.
type Theater struct {
    ID      string `json:"id"`      // theaters.id
    Name    string `json:"name"`    // theaters.name
    City    string `json:"city"`    // theaters.city
    Address string `json:"address"` // theaters.address
}
