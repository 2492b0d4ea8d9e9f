package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/kharcha/internal/classification"
	"github.com/Veraticus/kharcha/internal/common"
	"github.com/Veraticus/kharcha/internal/model"
)

var jsonObjectRegex = regexp.MustCompile(`(?s)\{.*\}`)

// cleanMarkdownWrapper removes a surrounding ``` or ```json fence.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// parseExpenses decodes a model response of the form {"expenses": [...]}.
// Text around the outermost JSON object is ignored. Categories are
// title-cased and entries with a zero amount are dropped.
func parseExpenses(content string) ([]model.Candidate, error) {
	content = cleanMarkdownWrapper(content)
	if content == "" {
		return nil, common.ErrEmptyResponse
	}

	raw := jsonObjectRegex.FindString(content)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in response: %q", truncate(content, 80))
	}

	var payload struct {
		Expenses []model.Candidate `json:"expenses"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	candidates := make([]model.Candidate, 0, len(payload.Expenses))
	for _, c := range payload.Expenses {
		if c.Amount == 0 {
			continue
		}
		c.Category = normalizeCategory(c.Category)
		if nc, ok := c.Resolution.(model.NeedsConfirmation); ok {
			opts := make([]model.ConfirmationOption, len(nc.Options))
			for i, opt := range nc.Options {
				opt.Category = normalizeCategory(opt.Category)
				opts[i] = opt
			}
			c.Resolution = model.NeedsConfirmation{Options: opts}
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return model.CategoryOther
	}
	return classification.Title(category)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
