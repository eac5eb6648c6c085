package engine_test

import (
	"strings"
	"testing"

	"github.com/hashcalc-project/hashcalc/internal/engine"
)

// FuzzEqual checks that digest comparison is symmetric, reflexive and
// ignores case and surrounding whitespace.
func FuzzEqual(f *testing.F) {
	f.Add("ABCD", "abcd")
	f.Add("", "")
	f.Add(" 5eb63bbbe01eeed093cb22bb8f5acdc3\n", "5EB63BBBE01EEED093CB22BB8F5ACDC3")
	f.Add("ß", "SS")
	f.Add("\xff", "\xfe")

	f.Fuzz(func(t *testing.T, a, b string) {
		if engine.Equal(a, b) != engine.Equal(b, a) {
			t.Errorf("Equal(%q, %q) is not symmetric", a, b)
		}
		if !engine.Equal(a, a) {
			t.Errorf("Equal(%q, %q) = false", a, a)
		}
		if !engine.Equal(" \t"+a+"\n", a) {
			t.Errorf("surrounding whitespace changed the result for %q", a)
		}
		if isASCII(a) && !engine.Equal(strings.ToUpper(a), strings.ToLower(a)) {
			t.Errorf("case changed the result for %q", a)
		}
	})
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
