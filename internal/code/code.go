package code

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Length is the number of symbols in a generated room code.
const Length = 6

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Normalize returns the canonical form of a room code: leading, trailing,
// and embedded whitespace (spaces, tabs, newlines from copy-paste) removed,
// remainder uppercased. Total and idempotent; empty input stays empty.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// NormalizeOptional normalizes through a pointer so that "no code provided"
// stays distinguishable from an empty or whitespace-only code.
func NormalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	n := Normalize(*s)
	return &n
}

// Generate produces a fresh random code. Uniqueness against live rooms is
// the registry's job; it retries on collision.
func Generate() (string, error) {
	b := make([]byte, Length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[num.Int64()]
	}
	return string(b), nil
}
