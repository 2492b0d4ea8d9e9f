package parser

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/kharcha/internal/classification"
	"github.com/Veraticus/kharcha/internal/model"
	"github.com/Veraticus/kharcha/internal/pattern"
)

// ExpenseParser runs the rule-based pipeline: unit normalization, clause
// segmentation, then the pattern cascade on each clause. It never returns an
// error; unparseable clauses are dropped. Safe for concurrent use.
type ExpenseParser struct {
	cascade *pattern.Cascade
	logger  *slog.Logger
}

// NewExpenseParser creates a parser over cascade. A nil logger uses slog.Default.
func NewExpenseParser(cascade *pattern.Cascade, logger *slog.Logger) *ExpenseParser {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseParser{cascade: cascade, logger: logger}
}

// NewDefaultExpenseParser wires the built-in keyword tables and rules.
func NewDefaultExpenseParser(logger *slog.Logger) (*ExpenseParser, error) {
	categories := classification.DefaultCategories()
	cascade, err := pattern.NewDefaultCascade(
		classification.NewPersonClassifier(categories),
		classification.NewCategorizer(categories, classification.DefaultSmartLadder()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build rule cascade: %w", err)
	}
	return NewExpenseParser(cascade, logger), nil
}

// ClauseResult records how one clause was handled.
type ClauseResult struct {
	Clause    string
	Rule      string
	Candidate model.Candidate
	Matched   bool
}

// Parse returns the candidates found in text, in input order, and the
// combined reply.
func (p *ExpenseParser) Parse(text string) ([]model.Candidate, string) {
	var candidates []model.Candidate
	for _, r := range p.Trace(text) {
		if r.Matched {
			candidates = append(candidates, r.Candidate)
		}
	}
	return candidates, GenerateReply(candidates)
}

// Trace runs the pipeline and reports every clause, including those no rule
// accepted.
func (p *ExpenseParser) Trace(text string) []ClauseResult {
	normalized, err := normalizeUnits(text)
	if err != nil {
		p.logger.Debug("Unit normalization failed, using input as is",
			"error", err)
		normalized = text
	}

	clauses := SegmentClauses(normalized)
	results := make([]ClauseResult, 0, len(clauses))
	for _, clause := range clauses {
		cand, rule, ok := p.cascade.MatchRule(clause)
		results = append(results, ClauseResult{
			Clause:    clause,
			Rule:      rule,
			Candidate: cand,
			Matched:   ok,
		})
	}
	return results
}
