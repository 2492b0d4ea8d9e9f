package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/kharcha/internal/model"
	"github.com/Veraticus/kharcha/internal/parser"
)

// ErrSkipped is returned when the user declines to pick an option.
var ErrSkipped = errors.New("confirmation skipped")

// OptionChooser asks the user which confirmation option applies to an
// ambiguous candidate and returns its index.
type OptionChooser interface {
	Choose(ctx context.Context, c model.Candidate) (int, error)
}

// PickerModel is a bubbletea model over a candidate's confirmation options.
type PickerModel struct {
	help      help.Model
	keys      PickerKeyMap
	candidate model.Candidate
	options   []model.ConfirmationOption
	cursor    int
	width     int
	done      bool
	skipped   bool
	quit      bool
}

// NewPickerModel creates a picker for the candidate's options.
func NewPickerModel(c model.Candidate) PickerModel {
	return PickerModel{
		candidate: c,
		options:   c.Options(),
		keys:      DefaultPickerKeyMap(),
		help:      help.New(),
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if len(m.options) == 0 {
			m.skipped = true
			m.done = true
			return m, tea.Quit
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Skip):
			m.skipped = true
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + len(m.options) - 1) % len(m.options)

		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(m.options)

		case key.Matches(msg, m.keys.Select):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Pick):
			n, err := strconv.Atoi(msg.String())
			if err == nil && n >= 1 && n <= len(m.options) {
				m.cursor = n - 1
				m.done = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.done {
		return ""
	}

	lines := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		prefix := fmt.Sprintf("[%d] ", i+1)
		if i == m.cursor {
			prefix = SelectedStyle.Render("> ")
		}

		line := fmt.Sprintf("%s%s %s", prefix, directionIcon(opt.Direction), opt.Label)
		if opt.Remarks != "" {
			line += SubtleStyle.Render(" - " + opt.Remarks)
		}
		if i == m.cursor {
			line = SelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderReply(parser.ReplyLine(m.candidate)),
		"",
		strings.Join(lines, "\n"),
		"",
		m.help.View(m.keys),
	) + "\n"
}

// Choice returns the selected index. It returns ErrSkipped when the user
// skipped and ErrInputCancelled when they quit.
func (m PickerModel) Choice() (int, error) {
	switch {
	case m.quit:
		return -1, ErrInputCancelled
	case m.skipped || !m.done:
		return -1, ErrSkipped
	default:
		return m.cursor, nil
	}
}

func directionIcon(d model.Direction) string {
	switch d {
	case model.DirectionIn:
		return "⬅"
	case model.DirectionOut:
		return "➡"
	default:
		return "•"
	}
}

// TeaPicker chooses options through a full-screen bubbletea program.
type TeaPicker struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPicker creates a picker reading keys from in and drawing to out.
func NewTeaPicker(in io.Reader, out io.Writer) *TeaPicker {
	return &TeaPicker{in: in, out: out}
}

// Choose implements OptionChooser.
func (p *TeaPicker) Choose(ctx context.Context, c model.Candidate) (int, error) {
	if !c.NeedsConfirmation() {
		return -1, fmt.Errorf("candidate %q does not need confirmation", c.Item)
	}

	program := tea.NewProgram(
		NewPickerModel(c),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return -1, ErrInputCancelled
		}
		return -1, fmt.Errorf("picker failed: %w", err)
	}

	picker, ok := final.(PickerModel)
	if !ok {
		return -1, fmt.Errorf("unexpected picker model %T", final)
	}
	return picker.Choice()
}

// LinePrompter chooses options by reading a number from a line-based input.
// It serves non-interactive terminals and piped input.
type LinePrompter struct {
	reader *NonBlockingReader
	out    io.Writer
}

// NewLinePrompter creates a prompter reading answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: NewNonBlockingReader(in), out: out}
}

// Choose implements OptionChooser. An empty answer or "s" skips; invalid
// answers are asked again.
func (p *LinePrompter) Choose(ctx context.Context, c model.Candidate) (int, error) {
	opts := c.Options()
	if opts == nil {
		return -1, fmt.Errorf("candidate %q does not need confirmation", c.Item)
	}

	_, _ = fmt.Fprintln(p.out, RenderReply(parser.ReplyLine(c)))
	for i, opt := range opts {
		_, _ = fmt.Fprintf(p.out, "  [%d] %s\n", i+1, opt.Label)
	}

	for {
		_, _ = fmt.Fprint(p.out, FormatPrompt(fmt.Sprintf("Choose 1-%d (s to skip)", len(opts))))

		answer, err := p.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return -1, ErrSkipped
			}
			return -1, err
		}

		answer = strings.ToLower(answer)
		if answer == "" || answer == "s" {
			return -1, ErrSkipped
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(opts) {
			return n - 1, nil
		}
		_, _ = fmt.Fprintln(p.out, FormatWarning(fmt.Sprintf("%q is not an option", answer)))
	}
}

// ResolveCandidates resolves every ambiguous candidate through chooser.
// Skipped candidates are dropped and counted. Cancellation stops the loop
// and returns what was resolved so far together with the error.
func ResolveCandidates(ctx context.Context, chooser OptionChooser, candidates []model.Candidate) ([]model.Candidate, int, error) {
	resolved := make([]model.Candidate, 0, len(candidates))
	skipped := 0

	for _, c := range candidates {
		if !c.NeedsConfirmation() {
			resolved = append(resolved, c)
			continue
		}

		index, err := chooser.Choose(ctx, c)
		if errors.Is(err, ErrSkipped) {
			skipped++
			continue
		}
		if err != nil {
			return resolved, skipped, err
		}

		r, err := c.Resolve(index)
		if err != nil {
			return resolved, skipped, err
		}
		resolved = append(resolved, r)
	}

	return resolved, skipped, nil
}
