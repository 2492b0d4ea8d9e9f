// Package pattern turns a single expense clause into a candidate transaction
// by trying an ordered list of wording rules.
package pattern

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/Veraticus/kharcha/internal/model"
)

// Tier groups rules by the kind of wording they recognize. Lower tiers are
// tried first.
type Tier int

// Rule tiers in evaluation order.
const (
	TierRepaymentMade Tier = iota + 1
	TierRepaymentReceived
	TierLoanCreation
	TierRepaymentDirection
	TierDebt
	TierIncome
	TierAmbiguous
	TierGiftExpense
	TierGeneric
)

func (t Tier) String() string {
	switch t {
	case TierRepaymentMade:
		return "repayment-made"
	case TierRepaymentReceived:
		return "repayment-received"
	case TierLoanCreation:
		return "loan-creation"
	case TierRepaymentDirection:
		return "repayment-direction"
	case TierDebt:
		return "debt"
	case TierIncome:
		return "income"
	case TierAmbiguous:
		return "ambiguous"
	case TierGiftExpense:
		return "gift-expense"
	case TierGeneric:
		return "generic"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// BuildFunc constructs a candidate from the submatches of a rule's regex and
// the already parsed amount. Returning false rejects the match and lets the
// cascade continue with the next rule.
type BuildFunc func(groups []string, amount int64) (model.Candidate, bool)

// Rule pairs a wording regex with the function that builds its candidate.
type Rule struct {
	Build       BuildFunc
	Name        string
	Regex       string
	Tier        Tier
	AmountGroup int // submatch index holding the amount
}

type compiledRule struct {
	compiledRegex *regexp.Regexp
	Rule
}

// Cascade evaluates rules in tier order and returns the first candidate
// produced. It holds no mutable state and is safe for concurrent use.
type Cascade struct {
	rules []compiledRule
}

// NewCascade compiles rules case-insensitively and orders them by tier.
// Rules within a tier keep their given order.
func NewCascade(rules []Rule) (*Cascade, error) {
	if err := validateRules(rules); err != nil {
		return nil, err
	}

	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		regexStr := r.Regex
		if !strings.HasPrefix(regexStr, "(?i)") {
			regexStr = "(?i)" + regexStr
		}

		regex, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", r.Name, err)
		}
		if r.AmountGroup < 1 || r.AmountGroup > regex.NumSubexp() {
			return nil, fmt.Errorf("rule %s: amount group %d out of range", r.Name, r.AmountGroup)
		}

		compiled = append(compiled, compiledRule{Rule: r, compiledRegex: regex})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Tier < compiled[j].Tier
	})

	return &Cascade{rules: compiled}, nil
}

// Match returns the candidate built by the first rule that accepts clause.
// A clause without any digit never matches. A matched amount that does not
// fit in an int64 ends the cascade for that clause without a candidate.
func (c *Cascade) Match(clause string) (model.Candidate, bool) {
	cand, _, ok := c.match(clause)
	return cand, ok
}

// Explain reports the name of the rule that would produce the candidate for
// clause.
func (c *Cascade) Explain(clause string) (string, bool) {
	_, name, ok := c.match(clause)
	return name, ok
}

// MatchRule is Match that also returns the name of the accepting rule.
func (c *Cascade) MatchRule(clause string) (model.Candidate, string, bool) {
	return c.match(clause)
}

func (c *Cascade) match(clause string) (model.Candidate, string, bool) {
	clause = strings.TrimSpace(clause)
	if strings.IndexFunc(clause, unicode.IsDigit) < 0 {
		return model.Candidate{}, "", false
	}

	for _, r := range c.rules {
		groups := r.compiledRegex.FindStringSubmatch(clause)
		if groups == nil {
			continue
		}

		amount, err := strconv.ParseInt(groups[r.AmountGroup], 10, 64)
		if err != nil {
			return model.Candidate{}, "", false
		}

		cand, ok := r.Build(groups, amount)
		if !ok {
			continue
		}
		if cand.Resolution == nil {
			cand.Resolution = model.Resolved{}
		}
		return cand, r.Name, true
	}

	return model.Candidate{}, "", false
}

// RuleCount returns the number of loaded rules.
func (c *Cascade) RuleCount() int {
	return len(c.rules)
}

// RuleNames returns rule names in evaluation order.
func (c *Cascade) RuleNames() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name
	}
	return names
}
