package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	Iterations = 120000
	saltLen    = 16
	keyLen     = sha256.Size
)

var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword — PBKDF2-SHA256 со случайной солью, формат "<salt-hex>:<digest-hex>".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}
	return hashWithSalt(password, salt), nil
}

func hashWithSalt(password string, salt []byte) string {
	digest := pbkdf2.Key([]byte(password), salt, Iterations, keyLen, sha256.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(digest)
}

// VerifyPassword пересчитывает хэш с сохранённой солью и сравнивает дайджесты за постоянное время.
func VerifyPassword(password, stored string) (bool, error) {
	saltHex, digestHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false, ErrMalformedHash
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := hex.DecodeString(digestHex)
	if err != nil || len(salt) == 0 || len(want) != keyLen {
		return false, ErrMalformedHash
	}
	got := pbkdf2.Key([]byte(password), salt, Iterations, keyLen, sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
