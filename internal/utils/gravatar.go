package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL returns the avatar for email using size 200, rating pg and the "mm" fallback.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
