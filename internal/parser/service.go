package parser

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/Veraticus/kharcha/internal/model"
	"github.com/Veraticus/kharcha/internal/service"
)

// Result is the outcome of parsing one input line.
type Result struct {
	Reply      string
	Source     model.Source
	Candidates []model.Candidate
}

// Service combines the rule-based parser with an optional fallback for
// lines the rules could not categorize.
type Service struct {
	parser   *ExpenseParser
	fallback service.Fallback
	logger   *slog.Logger
}

// NewService creates a parsing service. fallback may be nil.
func NewService(p *ExpenseParser, fallback service.Fallback, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		parser:   p,
		fallback: fallback,
		logger:   logger,
	}
}

// ParseExpense parses text. The fallback is consulted only when the rules
// found nothing or categorized everything as Other; its failures are logged
// and the rule result is returned instead. When that result is empty a bare
// number in text is still recorded as an Other expense.
func (s *Service) ParseExpense(ctx context.Context, text string) Result {
	candidates, reply := s.parser.Parse(text)
	rules := Result{Candidates: candidates, Reply: reply, Source: model.SourceRules}

	if !needsFallback(candidates) {
		s.logger.Debug("Rule parser resolved input",
			"candidates", len(candidates))
		return rules
	}

	if s.fallback == nil {
		return s.withBareAmount(text, rules)
	}

	enhanced, err := s.fallback.ParseExpenses(ctx, NormalizeUnits(text))
	if err != nil {
		s.logger.Warn("Fallback parsing failed, using rule result",
			"error", err,
			"candidates", len(candidates))
		return s.withBareAmount(text, rules)
	}
	if len(enhanced) == 0 {
		return s.withBareAmount(text, rules)
	}

	s.logger.Debug("Fallback parsed input",
		"candidates", len(enhanced))
	return Result{
		Candidates: enhanced,
		Reply:      GenerateReply(enhanced),
		Source:     model.SourceAI,
	}
}

var firstNumberRegex = regexp.MustCompile(`\d+`)

// withBareAmount is the last resort when neither the rules nor the fallback
// found anything: the first number in text is recorded as an uncategorized
// expense.
func (s *Service) withBareAmount(text string, rules Result) Result {
	if len(rules.Candidates) > 0 {
		return rules
	}
	cand, ok := bareAmount(text)
	if !ok {
		return rules
	}
	s.logger.Debug("Using bare amount", "amount", cand.Amount)
	candidates := []model.Candidate{cand}
	return Result{
		Candidates: candidates,
		Reply:      GenerateReply(candidates),
		Source:     model.SourceRules,
	}
}

func bareAmount(text string) (model.Candidate, bool) {
	digits := firstNumberRegex.FindString(NormalizeUnits(text))
	if digits == "" {
		return model.Candidate{}, false
	}
	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || amount == 0 {
		return model.Candidate{}, false
	}
	return model.Candidate{
		Amount:     amount,
		Item:       "expense",
		Category:   model.CategoryOther,
		Remarks:    "Expense",
		Resolution: model.Resolved{},
	}, true
}

// needsFallback reports whether the rule result is empty or every
// candidate is categorized Other without a confirmation prompt.
func needsFallback(candidates []model.Candidate) bool {
	for _, c := range candidates {
		if c.NeedsConfirmation() || !strings.EqualFold(c.Category, model.CategoryOther) {
			return false
		}
	}
	return true
}
