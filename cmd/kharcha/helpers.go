package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/kharcha/internal/common"
	"github.com/Veraticus/kharcha/internal/config"
	"github.com/Veraticus/kharcha/internal/llm"
	"github.com/Veraticus/kharcha/internal/parser"
	"github.com/Veraticus/kharcha/internal/service"
	"github.com/Veraticus/kharcha/internal/storage"
)

// initStorage opens the configured database and brings its schema up to date.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := config.DatabasePath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStorage(dbPath, common.LoggerFrom(ctx))
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parsing bundles the rule parser with the service that may consult the
// hosted model.
type parsing struct {
	rules    *parser.ExpenseParser
	service  *parser.Service
	fallback *llm.Fallback
	timeout  time.Duration
}

// newParsing builds the parsing pipeline. The hosted-model fallback is
// attached only when it is enabled and an API key is configured; otherwise
// parsing is rules-only.
func newParsing(ctx context.Context) (*parsing, error) {
	logger := common.LoggerFrom(ctx)

	rules, err := parser.NewDefaultExpenseParser(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build rule parser: %w", err)
	}

	p := &parsing{
		rules:   rules,
		timeout: viper.GetDuration("llm.timeout"),
	}

	var fallback service.Fallback
	if viper.GetBool("llm.enabled") && !viper.GetBool("llm.disabled") {
		cfg, err := config.LoadLLMConfig(viper.GetViper())
		switch {
		case errors.Is(err, common.ErrMissingConfig):
			logger.Debug("Hosted model disabled", "reason", err)
		case err != nil:
			return nil, err
		default:
			fb, err := llm.NewFallback(ctx, cfg, logger)
			if err != nil {
				logger.Warn("Hosted model unavailable, using rules only", "error", err)
				break
			}
			p.fallback = fb
			fallback = fb
		}
	}

	p.service = parser.NewService(rules, fallback, logger)
	return p, nil
}

// parse runs one line through the pipeline, bounding the whole call by the
// configured timeout.
func (p *parsing) parse(ctx context.Context, text string) parser.Result {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.service.ParseExpense(ctx, text)
}

func (p *parsing) Close() error {
	if p.fallback != nil {
		return p.fallback.Close()
	}
	return nil
}

// inputText joins command arguments into one line of input.
func inputText(args []string) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", common.NewUserError("nothing to parse", nil)
	}
	return text, nil
}
