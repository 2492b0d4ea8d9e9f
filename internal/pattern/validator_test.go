package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/kharcha/internal/classification"
)

func TestValidateRules(t *testing.T) {
	valid := Rule{Name: "ok", Tier: TierGeneric, Regex: `(\d+)`, AmountGroup: 1, Build: fixedBuild("ok")}

	tests := []struct {
		name   string
		errMsg string
		rules  []Rule
	}{
		{name: "valid", rules: []Rule{valid}},
		{name: "no rules", rules: nil},
		{
			name:   "unnamed",
			rules:  []Rule{{Tier: TierGeneric, Regex: `(\d+)`, AmountGroup: 1, Build: fixedBuild("x")}},
			errMsg: "has no name",
		},
		{
			name:   "duplicate name",
			rules:  []Rule{valid, valid},
			errMsg: "duplicate rule name ok",
		},
		{
			name:   "zero tier",
			rules:  []Rule{{Name: "untiered", Regex: `(\d+)`, AmountGroup: 1, Build: fixedBuild("x")}},
			errMsg: "unknown tier(0)",
		},
		{
			name:   "tier past generic",
			rules:  []Rule{{Name: "late", Tier: TierGeneric + 1, Regex: `(\d+)`, AmountGroup: 1, Build: fixedBuild("x")}},
			errMsg: "unknown tier(10)",
		},
		{
			name:   "empty pattern",
			rules:  []Rule{{Name: "blank", Tier: TierDebt, Regex: "  ", AmountGroup: 1, Build: fixedBuild("x")}},
			errMsg: "has no pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRules(tt.rules)
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRule)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDefaultRulesAreValid(t *testing.T) {
	rules := DefaultRules(
		classification.NewPersonClassifier(classification.DefaultCategories()),
		classification.NewDefaultCategorizer(),
	)
	require.NoError(t, validateRules(rules))

	for _, r := range rules {
		assert.NotEmpty(t, r.Tier.String(), r.Name)
	}
}
