// Package storage provides the data persistence layer for kharcha.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/kharcha/internal/common"
	"github.com/Veraticus/kharcha/internal/model"
	"github.com/Veraticus/kharcha/internal/service"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidFilter      = errors.New("invalid filter")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransactions validates a slice of transactions.
func validateTransactions(transactions []model.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}

	for i := range transactions {
		if err := validateTransaction(&transactions[i]); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

// validateTransaction validates a single transaction. Candidates still
// waiting for confirmation are rejected with common.ErrUnresolved.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if txn.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing creation time", ErrInvalidTransaction)
	}
	if txn.Candidate.NeedsConfirmation() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidTransaction, common.ErrUnresolved, txn.Candidate.Item)
	}
	if txn.Candidate.Amount == 0 {
		return fmt.Errorf("%w: zero amount", ErrInvalidTransaction)
	}
	if strings.TrimSpace(txn.Candidate.Item) == "" {
		return fmt.Errorf("%w: missing item", ErrInvalidTransaction)
	}
	if strings.TrimSpace(txn.Candidate.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}

	switch txn.Source {
	case model.SourceRules, model.SourceAI:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidTransaction, txn.Source)
	}
	return nil
}

// validateFilter validates a listing filter.
func validateFilter(filter service.TransactionFilter) error {
	if filter.Limit < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidFilter)
	}
	return nil
}
