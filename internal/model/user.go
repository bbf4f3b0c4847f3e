package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Passwords are stored only as bcrypt hashes; the plaintext never
// touches the store.  Users are created at registration and never mutated
// or deleted.
//
// Fields:
//  ID           – primary key identifier ("user-" prefix).
//  Name         – display name.
//  Email        – unique, normalized (lower-case, trimmed) email address.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of registration.
type User struct {
    ID           string    // users.id
    Name         string    // users.name
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    CreatedAt    time.Time // users.created_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user and contains metadata for expiry
// and revocation.  The plain token is not stored; only its
// SHA‑256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA‑256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
    ID        uint64     // refresh_tokens.id
    UserID    string     // refresh_tokens.user_id
    TokenHash string     // refresh_tokens.token_hash
    ExpiresAt time.Time  // refresh_tokens.expires_at
    RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
    CreatedAt time.Time  // refresh_tokens.created_at
}
