// Package auth owns the credential primitives: password hashing and
// verification, signed token issuance, and token-derived identity
// resolution.
package auth

import "golang.org/x/crypto/bcrypt"

// DefaultHashCost is the bcrypt work factor used when the configured
// cost is out of range. Deliberately slow; hashing latency is a
// security property, not a performance bug.
const DefaultHashCost = bcrypt.DefaultCost

// HashPassword derives a salted one-way hash of plaintext. A fresh
// random salt is embedded on every call, so hashing the same plaintext
// twice yields two different blobs.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches hash. The comparison
// does not leak where a mismatch occurs, and a malformed hash is a
// plain false, never an error or a panic.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
