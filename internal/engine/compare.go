package engine

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/hashcalc-project/hashcalc/pkg/model"
)

// Equal reports whether two digest strings are the same, ignoring case and
// surrounding whitespace. It does not treat blank strings specially.
func Equal(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}

// ApplyReference records reference on result and sets its verification
// outcome. A blank reference means no comparison was requested.
func ApplyReference(result *model.DigestResult, reference string) {
	if strings.TrimSpace(reference) == "" {
		result.Reference = ""
		result.Verification = model.VerificationSkipped
		return
	}
	result.Reference = strings.TrimSpace(reference)
	if Equal(result.Digest, reference) {
		result.Verification = model.VerificationMatch
	} else {
		result.Verification = model.VerificationMismatch
	}
}
