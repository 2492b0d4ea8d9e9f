package parser

import (
	"fmt"
	"strings"

	"github.com/Veraticus/kharcha/internal/model"
)

// NoExpensesReply is returned when nothing in the input could be parsed.
const NoExpensesReply = "ERROR: No expenses found. Try: '500 on biryani, 400 on grocery'"

// Reply line prefixes.
const (
	PrefixSuccess = "SUCCESS:"
	PrefixConfirm = "CONFIRM:"
	PrefixError   = "ERROR:"
)

// GenerateReply renders one status line per candidate, joined by newlines.
func GenerateReply(candidates []model.Candidate) string {
	if len(candidates) == 0 {
		return NoExpensesReply
	}

	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		lines = append(lines, ReplyLine(c))
	}
	return strings.Join(lines, "\n")
}

// ReplyLine renders a single candidate.
func ReplyLine(c model.Candidate) string {
	switch r := c.Resolution.(type) {
	case model.NeedsConfirmation:
		person := c.PaidBy
		if person == "" {
			person = "someone"
		}
		preposition := "to"
		if c.IsIncome() {
			preposition = "from"
		}

		labels := make([]string, 0, len(r.Options))
		for _, opt := range r.Options {
			label := opt.Label
			if label == "" {
				label = opt.Category
			}
			labels = append(labels, label)
		}
		return fmt.Sprintf("%s Rs.%d %s %s - Is this a %s?",
			PrefixConfirm, c.Magnitude(), preposition, person, strings.Join(labels, " or "))
	default:
		if c.IsIncome() {
			return fmt.Sprintf("%s Received Rs.%d -> %s (%s)", PrefixSuccess, c.Magnitude(), c.Category, c.Remarks)
		}
		return fmt.Sprintf("%s Added Rs.%d -> %s (%s)", PrefixSuccess, c.Magnitude(), c.Category, c.Remarks)
	}
}
