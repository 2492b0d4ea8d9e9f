package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/Veraticus/kharcha/internal/common"
	"github.com/Veraticus/kharcha/internal/model"
	"github.com/Veraticus/kharcha/internal/service"
)

// NewTransaction wraps a resolved candidate in a transaction with a fresh
// UUID and the current UTC time.
func NewTransaction(rawText string, source model.Source, cand model.Candidate) model.Transaction {
	return model.Transaction{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		RawText:   strings.TrimSpace(rawText),
		Source:    source,
		Candidate: cand,
	}
}

// SaveTransactions saves multiple transactions atomically. A duplicate ID
// fails the whole batch with common.ErrDuplicateEntry.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (
			id, raw_text, amount, item, category, remarks, paid_by, source, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		c := txn.Candidate
		_, err = stmt.ExecContext(ctx,
			txn.ID,
			txn.RawText,
			c.Amount,
			c.Item,
			c.Category,
			c.Remarks,
			nullString(c.PaidBy),
			string(txn.Source),
			txn.CreatedAt.UTC(),
		)
		if err != nil {
			var sqliteErr sqlite3.Error
			if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
				return fmt.Errorf("%w: transaction %s", common.ErrDuplicateEntry, txn.ID)
			}
			return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transactions: %w", err)
	}

	s.logger.Debug("Saved transactions", "count", len(transactions))
	return nil
}

// GetTransactionByID retrieves a transaction, or common.ErrNotFound.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, raw_text, amount, item, category, remarks, paid_by, source, created_at
		FROM transactions
		WHERE id = ?
	`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// ListTransactions returns stored transactions, newest first.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	where, args := filterClause(filter)
	query := `
		SELECT id, raw_text, amount, item, category, remarks, paid_by, source, created_at
		FROM transactions` + where + `
		ORDER BY created_at DESC, rowid DESC`
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// SummarizeByCategory returns net totals per category, largest outflow first.
// The filter's Limit is ignored.
func (s *SQLiteStorage) SummarizeByCategory(ctx context.Context, filter service.TransactionFilter) ([]service.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	where, args := filterClause(filter)
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, SUM(amount), COUNT(*)
		FROM transactions`+where+`
		GROUP BY category
		ORDER BY SUM(amount) DESC, category`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []service.CategoryTotal
	for rows.Next() {
		var t service.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total, &t.Count); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// DeleteTransaction removes a transaction, or returns common.ErrNotFound.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func filterClause(filter service.TransactionFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Since != nil {
		conds = append(conds, "created_at >= ?")
		args = append(args, filter.Since.UTC())
	}
	if filter.Category != "" {
		conds = append(conds, "category = ? COLLATE NOCASE")
		args = append(args, filter.Category)
	}
	if filter.PaidBy != "" {
		conds = append(conds, "paid_by = ? COLLATE NOCASE")
		args = append(args, filter.PaidBy)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (model.Transaction, error) {
	var (
		txn    model.Transaction
		paidBy sql.NullString
		source string
	)
	err := row.Scan(
		&txn.ID,
		&txn.RawText,
		&txn.Candidate.Amount,
		&txn.Candidate.Item,
		&txn.Candidate.Category,
		&txn.Candidate.Remarks,
		&paidBy,
		&source,
		&txn.CreatedAt,
	)
	if err != nil {
		return model.Transaction{}, err
	}

	txn.Candidate.PaidBy = paidBy.String
	txn.Candidate.Resolution = model.Resolved{}
	txn.Source = model.Source(source)
	return txn, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
