package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/kharcha/internal/common"
	"github.com/Veraticus/kharcha/internal/model"
)

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding space", input: "  \n{\"a\":1}\n ", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdownWrapper(tt.input))
		})
	}
}

func TestParseExpenses(t *testing.T) {
	t.Run("fenced with prose", func(t *testing.T) {
		content := "```json\nHere you go: {\"expenses\": [{\"amount\": 250, \"item\": \"taxi\", \"category\": \"transport\", \"remarks\": \"Taxi ride\"}]} hope that helps\n```"

		got, err := parseExpenses(content)
		require.NoError(t, err)
		assert.Equal(t, []model.Candidate{
			{Amount: 250, Item: "taxi", Category: model.CategoryTransport, Remarks: "Taxi ride", Resolution: model.Resolved{}},
		}, got)
	})

	t.Run("confirmation options are title cased", func(t *testing.T) {
		content := `{"expenses": [{"amount": -4000, "item": "gift from person", "category": "other",
			"remarks": "Received gift from Sonu", "paid_by": "Sonu", "needs_confirmation": true,
			"confirmation_options": [
				{"category": "gift income", "label": "Gift (no repayment needed)", "remarks": "Gift from Sonu", "direction": "in"},
				{"category": "LOAN", "label": "Loan (need to repay)", "remarks": "Loan received from Sonu"}
			]}]}`

		got, err := parseExpenses(content)
		require.NoError(t, err)
		require.Len(t, got, 1)

		c := got[0]
		assert.Equal(t, model.CategoryOther, c.Category)
		assert.Equal(t, "Sonu", c.PaidBy)
		require.True(t, c.NeedsConfirmation())

		opts := c.Options()
		require.Len(t, opts, 2)
		assert.Equal(t, model.CategoryGiftIncome, opts[0].Category)
		assert.Equal(t, model.DirectionIn, opts[0].Direction)
		assert.Equal(t, model.CategoryLoan, opts[1].Category)
	})

	t.Run("missing category and zero amount", func(t *testing.T) {
		content := `{"expenses": [{"amount": 0, "item": "nothing"}, {"amount": 12.9, "item": "pen"}]}`

		got, err := parseExpenses(content)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(12), got[0].Amount)
		assert.Equal(t, model.CategoryOther, got[0].Category)
	})

	t.Run("no expenses key", func(t *testing.T) {
		got, err := parseExpenses(`{"result": "none"}`)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := parseExpenses("")
		require.ErrorIs(t, err, common.ErrEmptyResponse)

		_, err = parseExpenses("no json here")
		require.Error(t, err)

		_, err = parseExpenses(`{"expenses": [}`)
		require.Error(t, err)
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(`got "gift" from sonu 4000`)

	assert.Contains(t, prompt, `"got \"gift\" from sonu 4000"`)
	assert.Contains(t, prompt, `"expenses"`)
	assert.Contains(t, prompt, "confirmation_options")
}
