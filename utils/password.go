package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes a password at the given cost. The salt is
// generated per call and embedded in the hash.
func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
