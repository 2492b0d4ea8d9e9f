// Package classification maps item descriptions to categories and decides
// whether a word in an expense line names a person.
package classification

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Veraticus/kharcha/internal/model"
)

var (
	leadingVerbRegex = regexp.MustCompile(`(?i)^(had|ate|took|got|bought|buy|ordered|spent|paid|for|on)\s+`)
	articleRegex     = regexp.MustCompile(`(?i)\b(the|a|an)\b`)
	spaceRunRegex    = regexp.MustCompile(`\s+`)
)

type compiledSlang struct {
	regex *regexp.Regexp
	to    string
}

// Categorizer assigns categories to item descriptions. It is safe for
// concurrent use.
type Categorizer struct {
	primary []KeywordGroup
	ladder  []KeywordGroup
	slang   []compiledSlang
}

// NewCategorizer creates a categorizer over the primary table and the
// secondary ladder. Both are consulted in slice order.
func NewCategorizer(primary, ladder []KeywordGroup) *Categorizer {
	slang := make([]compiledSlang, 0, len(defaultSlang))
	for _, s := range defaultSlang {
		slang = append(slang, compiledSlang{
			regex: regexp.MustCompile(`\b` + regexp.QuoteMeta(s.from) + `\b`),
			to:    s.to,
		})
	}

	return &Categorizer{
		primary: primary,
		ladder:  ladder,
		slang:   slang,
	}
}

// NewDefaultCategorizer creates a categorizer over the built-in tables.
func NewDefaultCategorizer() *Categorizer {
	return NewCategorizer(DefaultCategories(), DefaultSmartLadder())
}

// Categorize returns the first primary category with a keyword contained in
// description, then the first smart-ladder match, then Other.
func (c *Categorizer) Categorize(description string) string {
	lower := strings.ToLower(description)
	if category, ok := firstMatch(c.primary, lower); ok {
		return category
	}
	if category, ok := firstMatch(c.ladder, lower); ok {
		return category
	}
	return model.CategoryOther
}

func firstMatch(groups []KeywordGroup, lower string) (string, bool) {
	for _, g := range groups {
		for _, kw := range g.Keywords {
			if strings.Contains(lower, kw) {
				return g.Category, true
			}
		}
	}
	return "", false
}

// CleanItem strips a leading verb, drops articles and rewrites the first
// slang word found to English. Slang is matched on whole words only, so
// "chandan" is left alone even though it contains "anda".
func (c *Categorizer) CleanItem(item string) string {
	item = strings.TrimSpace(item)
	item = leadingVerbRegex.ReplaceAllString(item, "")
	item = articleRegex.ReplaceAllString(item, "")
	item = strings.TrimSpace(spaceRunRegex.ReplaceAllString(item, " "))

	lower := strings.ToLower(item)
	for _, s := range c.slang {
		if s.regex.MatchString(lower) {
			return s.regex.ReplaceAllString(lower, s.to)
		}
	}
	return item
}

// Remark builds the human-readable remark for an expense on item.
func (c *Categorizer) Remark(item, category string) string {
	title := Title(item)
	lower := strings.ToLower(item)

	switch category {
	case model.CategoryFood:
		if strings.Contains(lower, "food") {
			return "Food: " + title
		}
		return "Spent on " + title
	case model.CategoryShopping:
		return "Purchased " + title
	case model.CategoryTransport:
		for _, w := range []string{"taxi", "bus", "uber"} {
			if strings.Contains(lower, w) {
				return "Travelled by " + title
			}
		}
		return "Spent on " + title
	case model.CategoryGroceries:
		return "Grocery: " + title
	case model.CategoryUtilities:
		if strings.Contains(lower, "bill") {
			return "Paid " + title
		}
		return "Paid " + title + " Bill"
	case model.CategoryEntertainment:
		return "Entertainment: " + title
	case model.CategoryEducation:
		return "Education: " + title
	default:
		return title
	}
}

// Title upper-cases the first letter of every word. A Caser keeps state
// between calls, so one is created per call.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
