package model

// Resolution is the confirmation state of a candidate. It is either Resolved
// or NeedsConfirmation.
type Resolution interface {
	isResolution()
}

// Resolved marks a candidate whose direction and category are final.
type Resolved struct{}

// NeedsConfirmation marks a candidate whose wording is ambiguous. The caller
// must pick one of Options before the candidate is persisted.
type NeedsConfirmation struct {
	Options []ConfirmationOption
}

func (Resolved) isResolution()          {}
func (NeedsConfirmation) isResolution() {}

// Direction is the cash-flow direction an option implies.
type Direction string

const (
	// DirectionIn means cash enters the user; the resolved amount is negative.
	DirectionIn Direction = "in"
	// DirectionOut means cash leaves the user; the resolved amount is positive.
	DirectionOut Direction = "out"
)

// ConfirmationOption is one alternative offered for an ambiguous candidate.
type ConfirmationOption struct {
	Category  string    `json:"category"`
	Label     string    `json:"label"`
	Remarks   string    `json:"remarks"`
	Direction Direction `json:"direction,omitempty"`
}
