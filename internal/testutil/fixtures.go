package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Veraticus/kharcha/internal/model"
)

var fixtureSeq atomic.Int64

// FixtureEpoch is the creation time of the first fixture transaction.
var FixtureEpoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// TransactionBuilder builds resolved transactions for tests.
type TransactionBuilder struct {
	txn model.Transaction
}

// NewTransaction starts a Food expense of 10 with a unique ID. Each call
// is one minute after the previous one.
func NewTransaction() *TransactionBuilder {
	n := fixtureSeq.Add(1)
	return &TransactionBuilder{txn: model.Transaction{
		ID:        fmt.Sprintf("fixture-%04d", n),
		CreatedAt: FixtureEpoch.Add(time.Duration(n) * time.Minute),
		RawText:   "10 on tea",
		Source:    model.SourceRules,
		Candidate: model.Candidate{
			Amount:     10,
			Item:       "tea",
			Category:   model.CategoryFood,
			Remarks:    "Spent on Tea",
			Resolution: model.Resolved{},
		},
	}}
}

// ID sets the transaction ID.
func (b *TransactionBuilder) ID(id string) *TransactionBuilder {
	b.txn.ID = id
	return b
}

// At sets the creation time.
func (b *TransactionBuilder) At(t time.Time) *TransactionBuilder {
	b.txn.CreatedAt = t
	return b
}

// Amount sets the signed amount.
func (b *TransactionBuilder) Amount(amount int64) *TransactionBuilder {
	b.txn.Candidate.Amount = amount
	return b
}

// Expense makes the transaction an expense for item in category.
func (b *TransactionBuilder) Expense(item, category string) *TransactionBuilder {
	b.txn.Candidate.Item = item
	b.txn.Candidate.Category = category
	b.txn.Candidate.Remarks = "Spent on " + item
	b.txn.Candidate.PaidBy = ""
	b.txn.RawText = fmt.Sprintf("%d on %s", b.txn.Candidate.Magnitude(), item)
	return b
}

// Loan makes the transaction a loan with person. The current amount's sign
// decides whether it was lent or borrowed.
func (b *TransactionBuilder) Loan(person string) *TransactionBuilder {
	c := &b.txn.Candidate
	c.Category = model.CategoryLoan
	c.PaidBy = person
	if c.IsIncome() {
		c.Item = "borrowed from"
		c.Remarks = "Borrowed from " + person
	} else {
		c.Item = "lent to"
		c.Remarks = "Lent to " + person
	}
	b.txn.RawText = c.Remarks
	return b
}

// Source sets which component produced the transaction.
func (b *TransactionBuilder) Source(source model.Source) *TransactionBuilder {
	b.txn.Source = source
	return b
}

// Build returns the transaction.
func (b *TransactionBuilder) Build() model.Transaction {
	return b.txn
}
