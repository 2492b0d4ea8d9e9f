// Package service defines the interfaces between the parser and its
// collaborators.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/kharcha/internal/model"
)

// Fallback parses text the rule cascade could not confidently resolve.
// Implementations are best effort: any error means "no enhancement".
type Fallback interface {
	ParseExpenses(ctx context.Context, text string) ([]model.Candidate, error)
}

// TransactionFilter narrows a transaction listing. Zero values disable a filter.
type TransactionFilter struct {
	Since    *time.Time
	Category string
	PaidBy   string
	Limit    int
}

// CategoryTotal is the net amount and number of transactions in a category.
type CategoryTotal struct {
	Category string
	Total    int64
	Count    int
}

// Storage persists resolved transactions.
type Storage interface {
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	SummarizeByCategory(ctx context.Context, filter TransactionFilter) ([]CategoryTotal, error)

	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	// Retryable decides whether an error is worth another attempt. Nil
	// retries every error.
	Retryable    func(error) bool
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
