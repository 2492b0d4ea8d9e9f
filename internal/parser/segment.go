package parser

import (
	"regexp"
	"strings"
)

var (
	// groupedNumberRegex matches western (100,000) and Indian (1,00,000)
	// thousand grouping.
	groupedNumberRegex = regexp.MustCompile(`\b\d{1,3}(?:,\d{2})*(?:,\d{3})+\b`)
	clauseSplitRegex   = regexp.MustCompile(`(?i),|\band\b`)
)

// SegmentClauses removes grouping commas from numbers and splits text on
// commas and the standalone word "and". Clauses keep their input order;
// empty pieces are dropped.
func SegmentClauses(text string) []string {
	text = groupedNumberRegex.ReplaceAllStringFunc(strings.TrimSpace(text), func(n string) string {
		return strings.ReplaceAll(n, ",", "")
	})

	parts := clauseSplitRegex.Split(text, -1)
	clauses := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			clauses = append(clauses, p)
		}
	}
	return clauses
}
