package pattern

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule is returned when a rule cannot take part in a cascade.
var ErrInvalidRule = errors.New("invalid rule")

// validateRules checks that every rule is named, uniquely, has a known tier
// and a build function. Regex problems are reported at compile time.
func validateRules(rules []Rule) error {
	seen := make(map[string]struct{}, len(rules))

	for i, r := range rules {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return fmt.Errorf("%w: rule %d has no name", ErrInvalidRule, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate rule name %s", ErrInvalidRule, name)
		}
		seen[name] = struct{}{}

		if r.Tier < TierRepaymentMade || r.Tier > TierGeneric {
			return fmt.Errorf("%w: rule %s has unknown %s", ErrInvalidRule, name, r.Tier)
		}
		if r.Build == nil {
			return fmt.Errorf("%w: rule %s has no build function", ErrInvalidRule, name)
		}
		if strings.TrimSpace(r.Regex) == "" {
			return fmt.Errorf("%w: rule %s has no pattern", ErrInvalidRule, name)
		}
	}

	return nil
}
