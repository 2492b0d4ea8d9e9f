package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Veraticus/kharcha/internal/cli"
	"github.com/Veraticus/kharcha/internal/common"
	"github.com/Veraticus/kharcha/internal/model"
	"github.com/Veraticus/kharcha/internal/parser"
	"github.com/Veraticus/kharcha/internal/service"
	"github.com/Veraticus/kharcha/internal/storage"
)

func logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log TEXT...",
		Short: "Parse a note and save the entries",
		Long: `Parse a plain-language note and save every resolved entry.

Ambiguous entries such as "500 to sonu" open a picker so you can say whether
it was a loan, a repayment or a gift. Use --no-input to skip them instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLog,
	}

	cmd.Flags().Bool("no-input", false, "skip ambiguous entries instead of asking")
	cmd.Flags().Bool("plain", false, "ask with a numbered prompt instead of the interactive picker")

	return cmd
}

func runLog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, err := inputText(args)
	if err != nil {
		return err
	}

	noInput, _ := cmd.Flags().GetBool("no-input")
	plain, _ := cmd.Flags().GetBool("plain")

	p, err := newParsing(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var chooser cli.OptionChooser
	if !noInput {
		if plain {
			chooser = cli.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		} else {
			chooser = cli.NewTeaPicker(cmd.InOrStdin(), cmd.OutOrStdout())
		}
	}

	return logEntry(ctx, cmd.OutOrStdout(), p, store, chooser, text)
}

// logEntry parses text, resolves ambiguous candidates through chooser (nil
// skips them) and saves the result.
func logEntry(ctx context.Context, out io.Writer, p *parsing, store service.Storage, chooser cli.OptionChooser, text string) error {
	result := p.parse(ctx, text)
	if len(result.Candidates) == 0 {
		_, err := fmt.Fprintln(out, cli.RenderReply(result.Reply))
		return err
	}

	resolved, skipped, err := resolve(ctx, chooser, result.Candidates)
	if errors.Is(err, cli.ErrInputCancelled) {
		return common.NewUserError("Nothing saved", err)
	}
	if err != nil {
		return err
	}

	if len(resolved) > 0 {
		txns := make([]model.Transaction, 0, len(resolved))
		for _, c := range resolved {
			txns = append(txns, storage.NewTransaction(text, result.Source, c))
		}
		if err := store.SaveTransactions(ctx, txns); err != nil {
			return fmt.Errorf("failed to save entries: %w", err)
		}
		if _, err := fmt.Fprintln(out, cli.RenderReply(parser.GenerateReply(resolved))); err != nil {
			return err
		}
	}

	if skipped > 0 {
		_, err := fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf("Skipped %d ambiguous entr%s", skipped, plural(skipped, "y", "ies"))))
		return err
	}
	return nil
}

// resolve asks chooser about each ambiguous candidate. A nil chooser skips them.
func resolve(ctx context.Context, chooser cli.OptionChooser, candidates []model.Candidate) ([]model.Candidate, int, error) {
	if chooser != nil {
		return cli.ResolveCandidates(ctx, chooser, candidates)
	}

	resolved := make([]model.Candidate, 0, len(candidates))
	skipped := 0
	for _, c := range candidates {
		if c.NeedsConfirmation() {
			skipped++
			continue
		}
		resolved = append(resolved, c)
	}
	return resolved, skipped, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
