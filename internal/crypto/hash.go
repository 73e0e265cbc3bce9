package crypto

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the cost factor for bcrypt password hashing.
const BcryptCost = 10

// HashPassword hashes a password using bcrypt. The salt is generated and
// embedded in the returned hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether a password matches the given bcrypt hash.
// The comparison is constant-time.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
