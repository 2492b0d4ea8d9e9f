package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/kharcha/internal/model"
)

func ambiguousCandidate() model.Candidate {
	return model.Candidate{
		Amount:   500,
		Item:     "to",
		Category: model.CategoryOther,
		Remarks:  "Paid to Sonu",
		PaidBy:   "Sonu",
		Resolution: model.NeedsConfirmation{Options: []model.ConfirmationOption{
			{Category: model.CategoryLoan, Label: "Lent to Sonu", Remarks: "Lent to Sonu", Direction: model.DirectionOut},
			{Category: model.CategoryLoan, Label: "Repaid Sonu", Remarks: "Repaid Sonu", Direction: model.DirectionOut},
			{Category: model.CategoryGifts, Label: "Gift to Sonu", Remarks: "Gift to Sonu", Direction: model.DirectionOut},
		}},
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPickerModel_Update(t *testing.T) {
	tests := []struct {
		wantErr   error
		name      string
		keys      []tea.KeyMsg
		wantIndex int
	}{
		{
			name:      "enter selects first option",
			keys:      []tea.KeyMsg{{Type: tea.KeyEnter}},
			wantIndex: 0,
		},
		{
			name:      "down then enter",
			keys:      []tea.KeyMsg{{Type: tea.KeyDown}, runeKey("j"), {Type: tea.KeyEnter}},
			wantIndex: 2,
		},
		{
			name:      "up wraps to last",
			keys:      []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}},
			wantIndex: 2,
		},
		{
			name:      "number selects directly",
			keys:      []tea.KeyMsg{runeKey("2")},
			wantIndex: 1,
		},
		{
			name:      "out of range number is ignored",
			keys:      []tea.KeyMsg{runeKey("9"), {Type: tea.KeyEnter}},
			wantIndex: 0,
		},
		{
			name:      "skip",
			keys:      []tea.KeyMsg{{Type: tea.KeyEsc}},
			wantIndex: -1,
			wantErr:   ErrSkipped,
		},
		{
			name:      "quit",
			keys:      []tea.KeyMsg{runeKey("q")},
			wantIndex: -1,
			wantErr:   ErrInputCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewPickerModel(ambiguousCandidate())
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = m.Update(k)
			}
			require.NotNil(t, cmd, "final key should quit the program")

			index, err := m.(PickerModel).Choice()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}

func TestPickerModel_View(t *testing.T) {
	m := NewPickerModel(ambiguousCandidate())
	view := m.View()

	assert.Contains(t, view, "Rs.500")
	assert.Contains(t, view, "Lent to Sonu")
	assert.Contains(t, view, "Repaid Sonu")
	assert.Contains(t, view, "[2]")
	assert.Contains(t, view, "quit")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, updated.View())
}

func TestPickerModel_UnfinishedIsSkipped(t *testing.T) {
	_, err := NewPickerModel(ambiguousCandidate()).Choice()
	assert.ErrorIs(t, err, ErrSkipped)
}

func TestLinePrompter_Choose(t *testing.T) {
	tests := []struct {
		wantErr   error
		name      string
		input     string
		wantIndex int
	}{
		{name: "valid number", input: "3\n", wantIndex: 2},
		{name: "retries invalid answer", input: "7\nfoo\n1\n", wantIndex: 0},
		{name: "s skips", input: "S\n", wantIndex: -1, wantErr: ErrSkipped},
		{name: "empty skips", input: "\n", wantIndex: -1, wantErr: ErrSkipped},
		{name: "end of input skips", input: "", wantIndex: -1, wantErr: ErrSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := NewLinePrompter(strings.NewReader(tt.input), &out)

			index, err := p.Choose(context.Background(), ambiguousCandidate())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantIndex, index)
			assert.Contains(t, out.String(), "[3] Gift to Sonu")
		})
	}
}

func TestLinePrompter_ResolvedCandidate(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("1\n"), &strings.Builder{})
	_, err := p.Choose(context.Background(), model.Candidate{Item: "tea", Resolution: model.Resolved{}})
	assert.Error(t, err)
}

type fakeChooser struct {
	answers []int
	errs    []error
	calls   int
}

func (f *fakeChooser) Choose(_ context.Context, _ model.Candidate) (int, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return -1, f.errs[i]
	}
	return f.answers[i], nil
}

func TestResolveCandidates(t *testing.T) {
	tea10 := model.Candidate{Amount: 10, Item: "tea", Category: model.CategoryFood, Remarks: "Spent on Tea", Resolution: model.Resolved{}}
	ambiguous := ambiguousCandidate()

	t.Run("resolves and keeps order", func(t *testing.T) {
		chooser := &fakeChooser{answers: []int{2}}
		got, skipped, err := ResolveCandidates(context.Background(), chooser, []model.Candidate{tea10, ambiguous})
		require.NoError(t, err)

		assert.Equal(t, 0, skipped)
		require.Len(t, got, 2)
		assert.Equal(t, tea10, got[0])
		assert.Equal(t, model.CategoryGifts, got[1].Category)
		assert.False(t, got[1].NeedsConfirmation())
		assert.Equal(t, int64(500), got[1].Amount)
	})

	t.Run("skipped are dropped", func(t *testing.T) {
		chooser := &fakeChooser{answers: []int{0, 0}, errs: []error{ErrSkipped}}
		got, skipped, err := ResolveCandidates(context.Background(), chooser, []model.Candidate{ambiguous, tea10, ambiguous})
		require.NoError(t, err)

		assert.Equal(t, 1, skipped)
		require.Len(t, got, 2)
		assert.Equal(t, "Lent to Sonu", got[1].Remarks)
	})

	t.Run("cancel returns partial", func(t *testing.T) {
		chooser := &fakeChooser{errs: []error{ErrInputCancelled}}
		got, _, err := ResolveCandidates(context.Background(), chooser, []model.Candidate{tea10, ambiguous, tea10})

		assert.True(t, errors.Is(err, ErrInputCancelled))
		assert.Equal(t, []model.Candidate{tea10}, got)
	})
}
