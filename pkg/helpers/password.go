package helpers

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the work factor for password hashing.
const BcryptCost = 12

// HashPassword hashes the plain text password using bcrypt. The salt is
// generated per call, so hashing the same password twice yields different
// strings.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
