// Package model holds the value types shared across hashcalc packages.
package model

import (
	"strings"

	"github.com/hashcalc-project/hashcalc/pkg/errclass"
)

// Algorithm identifies one of the supported digest algorithms.
type Algorithm string

const (
	MD5    Algorithm = "MD5"
	SHA1   Algorithm = "SHA1"
	SHA256 Algorithm = "SHA256"
	SHA512 Algorithm = "SHA512"
)

// Algorithms returns the supported algorithms in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA512}
}

// ParseAlgorithm converts a user-supplied token into an Algorithm.
// Tokens are matched case-insensitively and a dash is tolerated ("sha-256").
func ParseAlgorithm(s string) (Algorithm, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	if token == "" {
		return "", errclass.ErrUsage.WithMessage("no algorithm selected: choose one of MD5, SHA1, SHA256, SHA512")
	}
	token = strings.ReplaceAll(token, "-", "")
	a := Algorithm(token)
	if !a.Valid() {
		return "", errclass.ErrUsage.WithMessagef("unsupported algorithm %q: choose one of MD5, SHA1, SHA256, SHA512", s)
	}
	return a, nil
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	switch a {
	case MD5, SHA1, SHA256, SHA512:
		return true
	}
	return false
}

// HexLen returns the length of the hex-encoded digest, or 0 for an invalid algorithm.
func (a Algorithm) HexLen() int {
	switch a {
	case MD5:
		return 32
	case SHA1:
		return 40
	case SHA256:
		return 64
	case SHA512:
		return 128
	}
	return 0
}

func (a Algorithm) String() string {
	return string(a)
}
