package utils

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost is the work factor used when no override is configured.
const DefaultBcryptCost = 12

// HashPassword returns a bcrypt hash of the provided password using the given
// cost. Costs outside bcrypt's supported range fall back to DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hashed password with its possible plaintext equivalent.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
