package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hashcalc-project/hashcalc/pkg/model"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"ABCD", "abcd", true},
		{"  abcd\n", "ABCD", true},
		{"abcd", "abce", false},
		{"", "", true},
		{"abcd", "", false},
		{"ab cd", "abcd", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Equal(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, Equal(tt.a, tt.b), Equal(tt.b, tt.a), "symmetry %q vs %q", tt.a, tt.b)
	}
}

func TestApplyReference(t *testing.T) {
	res := &model.DigestResult{Digest: "D41D8CD98F00B204E9800998ECF8427E"}

	ApplyReference(res, " d41d8cd98f00b204e9800998ecf8427e ")
	assert.Equal(t, model.VerificationMatch, res.Verification)
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", res.Reference)

	ApplyReference(res, "deadbeef")
	assert.Equal(t, model.VerificationMismatch, res.Verification)

	ApplyReference(res, "  ")
	assert.Equal(t, model.VerificationSkipped, res.Verification)
	assert.Empty(t, res.Reference)
}

func TestNewContext(t *testing.T) {
	for _, alg := range model.Algorithms() {
		h, err := newContext(alg)
		assert.NoError(t, err)
		assert.Equal(t, alg.HexLen()/2, h.Size())
	}
	_, err := newContext("SHA224")
	assert.Error(t, err)
}
