package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const saltLength = 16

func generateSalt() (string, error) {
	buf := make([]byte, saltLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword hashes password with a fresh random 16-byte salt and returns
// "hex(sha256(password+salt)):hex(salt)".
//
// A single SHA-256 pass over a concatenated salt is not a memory-hard KDF;
// it exists for compatibility with already-stored credential records. New
// deployments should prefer HashPasswordArgon2id.
func HashPassword(password string) (string, error) {
	salt, err := generateSalt()
	if err != nil {
		return "", err
	}
	return hashWithSalt(password, salt), nil
}

func hashWithSalt(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:]) + ":" + salt
}

// legacyHash is the original unsalted digest format, kept so records created
// before salting was introduced still verify.
func legacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password matches the stored hash. Three
// stored formats are accepted:
//
//   - "$argon2id$..."       argon2id (see argon2.go)
//   - "hex(digest):hex(salt)" salted SHA-256
//   - bare hex digest         legacy unsalted SHA-256
//
// Any stored value without a salt segment takes the legacy path. There is no
// way to detect a forged legacy-format value; the comparison simply fails.
func VerifyPassword(password, stored string) bool {
	if strings.HasPrefix(stored, argon2Prefix) {
		ok, err := verifyArgon2id(password, stored)
		return err == nil && ok
	}
	_, salt, found := strings.Cut(stored, ":")
	if !found || salt == "" {
		return subtle.ConstantTimeCompare([]byte(legacyHash(password)), []byte(stored)) == 1
	}
	return subtle.ConstantTimeCompare([]byte(hashWithSalt(password, salt)), []byte(stored)) == 1
}
