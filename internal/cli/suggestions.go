package cli

import (
	"fmt"
	"strings"

	"github.com/hashcalc-project/hashcalc/pkg/color"
	"github.com/hashcalc-project/hashcalc/pkg/model"
)

// suggestAlgorithms provides a hint for an unsupported algorithm token.
func suggestAlgorithms(token string) string {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(token), "-", ""))

	var matches []string
	if norm != "" {
		for _, a := range model.Algorithms() {
			if strings.HasPrefix(string(a), norm) || strings.HasPrefix(norm, string(a)) {
				matches = append(matches, color.Success(string(a)))
			}
		}
		// Typos such as SHA265 share a prefix with the intended name.
		if len(matches) == 0 && len(norm) >= 2 {
			for _, a := range model.Algorithms() {
				if len(a) == len(norm) && strings.HasPrefix(string(a), norm[:2]) {
					matches = append(matches, color.Success(string(a)))
				}
			}
		}
	}

	if len(matches) > 0 {
		hint := "Did you mean"
		if len(matches) > 1 {
			hint += " one of"
		}
		return fmt.Sprintf("%s: %s?", hint, strings.Join(matches, ", "))
	}

	var names []string
	for _, a := range model.Algorithms() {
		names = append(names, color.Success(string(a)))
	}
	return fmt.Sprintf("Supported algorithms: %s", strings.Join(names, ", "))
}
