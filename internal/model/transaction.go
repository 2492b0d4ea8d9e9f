// Package model defines the core domain models used throughout the application.
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Candidate is a structured transaction produced from one clause of input text.
//
// Amount follows a single sign convention: positive means cash left the user
// (expense, loan given, repayment made), negative means cash entered
// (income, loan received, repayment collected).
type Candidate struct {
	Resolution Resolution
	Item       string
	Category   string
	Remarks    string
	PaidBy     string // counter-party, empty for ordinary self-paid expenses
	Amount     int64
}

// NeedsConfirmation reports whether the caller must pick one of the candidate's options.
func (c Candidate) NeedsConfirmation() bool {
	_, ok := c.Resolution.(NeedsConfirmation)
	return ok
}

// Options returns the confirmation options, or nil for a resolved candidate.
func (c Candidate) Options() []ConfirmationOption {
	if nc, ok := c.Resolution.(NeedsConfirmation); ok {
		return nc.Options
	}
	return nil
}

// IsIncome reports whether the candidate models cash entering the user.
func (c Candidate) IsIncome() bool {
	return c.Amount < 0
}

// Magnitude returns the absolute amount.
func (c Candidate) Magnitude() int64 {
	if c.Amount < 0 {
		return -c.Amount
	}
	return c.Amount
}

// Resolve applies the confirmation option at index and returns a resolved candidate.
// The option's direction, when set, fixes the provisional sign of the amount.
func (c Candidate) Resolve(index int) (Candidate, error) {
	opts := c.Options()
	if opts == nil {
		return Candidate{}, fmt.Errorf("candidate %q does not need confirmation", c.Item)
	}
	if index < 0 || index >= len(opts) {
		return Candidate{}, fmt.Errorf("option %d out of range (have %d)", index, len(opts))
	}

	opt := opts[index]
	resolved := c
	resolved.Resolution = Resolved{}
	resolved.Category = opt.Category
	if opt.Remarks != "" {
		resolved.Remarks = opt.Remarks
	}

	switch opt.Direction {
	case DirectionIn:
		resolved.Amount = -c.Magnitude()
	case DirectionOut:
		resolved.Amount = c.Magnitude()
	}

	return resolved, nil
}

// candidateJSON is the wire shape shared with the web layer and the hosted model.
type candidateJSON struct {
	PaidBy              *string              `json:"paid_by"`
	Item                string               `json:"item"`
	Category            string               `json:"category"`
	Remarks             string               `json:"remarks"`
	ConfirmationOptions []ConfirmationOption `json:"confirmation_options,omitempty"`
	Amount              int64                `json:"amount"`
	NeedsConfirmation   bool                 `json:"needs_confirmation,omitempty"`
}

// MarshalJSON encodes the candidate with a nullable paid_by and flattened confirmation fields.
func (c Candidate) MarshalJSON() ([]byte, error) {
	wire := candidateJSON{
		Amount:   c.Amount,
		Item:     c.Item,
		Category: c.Category,
		Remarks:  c.Remarks,
	}
	if c.PaidBy != "" {
		paidBy := c.PaidBy
		wire.PaidBy = &paidBy
	}
	if opts := c.Options(); opts != nil {
		wire.NeedsConfirmation = true
		wire.ConfirmationOptions = opts
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes the wire shape. Fractional amounts are truncated
// toward zero. A candidate flagged for confirmation without any options is
// treated as resolved.
func (c *Candidate) UnmarshalJSON(data []byte) error {
	var wire struct {
		Amount json.Number `json:"amount"`
		candidateJSON
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	var amount int64
	if wire.Amount != "" {
		f, err := wire.Amount.Float64()
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", wire.Amount, err)
		}
		amount = int64(f)
	}

	*c = Candidate{
		Amount:     amount,
		Item:       wire.Item,
		Category:   wire.Category,
		Remarks:    wire.Remarks,
		Resolution: Resolved{},
	}
	if wire.PaidBy != nil {
		c.PaidBy = *wire.PaidBy
	}
	if wire.NeedsConfirmation && len(wire.ConfirmationOptions) > 0 {
		c.Resolution = NeedsConfirmation{Options: wire.ConfirmationOptions}
	}
	return nil
}

// Transaction is a resolved candidate that has been persisted.
type Transaction struct {
	CreatedAt time.Time
	ID        string
	RawText   string
	Source    Source
	Candidate Candidate
}

// Source records which component produced a transaction.
type Source string

const (
	// SourceRules marks transactions produced by the pattern cascade.
	SourceRules Source = "rules"
	// SourceAI marks transactions produced by the hosted-model fallback.
	SourceAI Source = "ai"
)
