package recur

import (
	"fmt"
	"strings"
)

// parseRuleText turns one line of rule text into parts. The caller is
// expected to have unfolded the line and resolved backslash escapes already;
// this sees exactly one logical line.
//
// The whole input is upper-cased first and empty parts from stray ";" are
// skipped. Values are kept as raw scalars: the shared normalizer splits
// comma-separated values and packs UNTIL, so parsed and caller-supplied
// scalars go through the one code path. A part without "=", or with nothing
// before it, fails the whole parse rather than being skipped, so a typo
// never silently drops half a rule. Empty input is a valid empty rule; the
// missing FREQ is a validation finding, not a parse error.
func parseRuleText(text string) ([]RulePart, error) {
	text = strings.ToUpper(text)
	var parts []RulePart
	for _, part := range strings.Split(text, ";") {
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRulePart, part)
		}
		parts = append(parts, RulePart{Name: kv[0], Value: Scalar(kv[1])})
	}
	return parts, nil
}
