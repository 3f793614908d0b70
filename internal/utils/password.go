package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt only reads the first 72 bytes; longer passwords are cut there so
// they hash instead of failing with bcrypt.ErrPasswordTooLong.
const maxPasswordBytes = 72

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password))
}

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
