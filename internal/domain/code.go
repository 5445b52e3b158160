package domain

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// CodeAlphabet is the 62-symbol alphabet generated codes are drawn from.
	CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// CodeLength is the length of generated codes.
	CodeLength = 6
)

// GenerateCode returns a random code of CodeLength symbols, each drawn
// independently and uniformly from CodeAlphabet.
// Uniqueness is not guaranteed; the store's unique index decides.
func GenerateCode() (string, error) {
	return gonanoid.Generate(CodeAlphabet, CodeLength)
}

// ValidateCode accepts any caller-supplied code except one containing a
// path separator, which the single-segment routes could never match.
func ValidateCode(code string) error {
	if strings.Contains(code, "/") {
		return ErrInvalidCode
	}
	return nil
}
