package classification

import (
	"strings"
	"unicode"
)

const (
	minNameLength = 3
	maxNameLength = 10
)

// PersonClassifier decides whether a bare word names a person or is part of
// an item description. It is safe for concurrent use; its tables are never
// mutated after construction.
type PersonClassifier struct {
	keywords      map[string]struct{}
	nonPerson     map[string]struct{}
	commonObjects map[string]struct{}
}

// NewPersonClassifier builds a classifier from the given category tables.
// Multi-word keywords also contribute each of their parts longer than two
// characters, so "ice cream" excludes both "ice" and "cream".
func NewPersonClassifier(groups []KeywordGroup) *PersonClassifier {
	keywords := make(map[string]struct{})
	for _, g := range groups {
		for _, kw := range g.Keywords {
			kw = strings.ToLower(kw)
			keywords[kw] = struct{}{}
			if !strings.Contains(kw, " ") {
				continue
			}
			for _, part := range strings.Fields(kw) {
				if len(part) > 2 {
					keywords[part] = struct{}{}
				}
			}
		}
	}

	return &PersonClassifier{
		keywords:      keywords,
		nonPerson:     toSet(defaultNonPersonWords),
		commonObjects: toSet(defaultCommonObjects),
	}
}

// IsLikelyPerson applies the heuristic ladder to word. contextWord is the
// token preceding word, or empty when there is none; a known item keyword
// there marks word as part of a compound item ("water jar").
func (pc *PersonClassifier) IsLikelyPerson(word, contextWord string) bool {
	if len(word) < minNameLength {
		return false
	}

	lower := strings.ToLower(word)
	if pc.isKeyword(lower) {
		return false
	}
	if _, ok := pc.nonPerson[lower]; ok {
		return false
	}

	if contextWord != "" && pc.isKeyword(strings.ToLower(contextWord)) {
		return false
	}

	if _, ok := pc.commonObjects[lower]; ok {
		return false
	}

	if strings.IndexFunc(word, unicode.IsDigit) >= 0 {
		return false
	}

	return len(word) <= maxNameLength
}

// IsKeyword reports whether word belongs to any category's keyword set.
func (pc *PersonClassifier) IsKeyword(word string) bool {
	return pc.isKeyword(strings.ToLower(word))
}

func (pc *PersonClassifier) isKeyword(lower string) bool {
	_, ok := pc.keywords[lower]
	return ok
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
