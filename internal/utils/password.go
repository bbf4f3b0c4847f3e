package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes a registration password.  The cost comes
// from BCRYPT_COST so tests can run cheap hashes; out-of-range values
// fall back to the library default rather than failing signup.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored hash.  Login
// treats a mismatch and an unknown email identically, so this returns
// only a bool.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
