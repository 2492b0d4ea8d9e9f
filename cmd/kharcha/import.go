package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/kharcha/internal/cli"
	"github.com/Veraticus/kharcha/internal/common"
	"github.com/Veraticus/kharcha/internal/config"
	"github.com/Veraticus/kharcha/internal/model"
	"github.com/Veraticus/kharcha/internal/service"
	"github.com/Veraticus/kharcha/internal/storage"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Parse and save every line of a text file",
		Long: `Import a text file with one note per line.

Blank lines and lines starting with # are ignored. Each line is saved as it is
parsed, so an interrupted import keeps everything before the interruption.
Ambiguous entries are listed at the end and not saved; log them again with
"kharcha log" to pick an option.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "parse without saving")

	return cmd
}

// importStats summarizes an import run.
type importStats struct {
	Ambiguous []string // lines with entries that need confirmation
	Unparsed  []string // lines that produced no entries
	Lines     int
	Saved     int
}

func runImport(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	lines, err := readLines(config.ExpandPath(args[0]))
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return common.NewUserError(fmt.Sprintf("%s has no entries", args[0]), nil)
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context(), "Lines imported so far were saved.")

	p, err := newParsing(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	var store service.Storage
	if !dryRun {
		store, err = initStorage(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Importing %d lines", len(lines))))

	bar := cli.NewProgressBar(len(lines), cmd.ErrOrStderr(), "Parsing entries...")
	stats, err := importLines(ctx, p, store, lines, bar)
	if err != nil && !handler.WasInterrupted() {
		return err
	}

	printImportStats(out, stats, dryRun)
	return nil
}

// readLines returns the non-blank, non-comment lines of path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided import file
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// importLines parses and saves lines one at a time. A nil store parses
// without saving. Cancellation stops after the current line.
func importLines(ctx context.Context, p *parsing, store service.Storage, lines []string, bar *progressbar.ProgressBar) (importStats, error) {
	logger := common.LoggerFrom(ctx)
	var stats importStats

	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		result := p.parse(ctx, line)
		stats.Lines++

		var txns []model.Transaction
		ambiguous := false
		for _, c := range result.Candidates {
			if c.NeedsConfirmation() {
				ambiguous = true
				continue
			}
			txns = append(txns, storage.NewTransaction(line, result.Source, c))
		}

		switch {
		case len(result.Candidates) == 0:
			stats.Unparsed = append(stats.Unparsed, line)
		case ambiguous:
			stats.Ambiguous = append(stats.Ambiguous, line)
		}

		if len(txns) > 0 && store != nil {
			if err := store.SaveTransactions(ctx, txns); err != nil {
				if errors.Is(err, context.Canceled) {
					return stats, err
				}
				return stats, fmt.Errorf("failed to save %q: %w", line, err)
			}
			stats.Saved += len(txns)
		} else if store == nil {
			stats.Saved += len(txns)
		}

		if bar != nil {
			if err := bar.Add(1); err != nil {
				logger.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	logger.Debug("Import finished",
		"lines", stats.Lines,
		"saved", stats.Saved,
		"ambiguous", len(stats.Ambiguous),
		"unparsed", len(stats.Unparsed))
	return stats, nil
}

func printImportStats(out io.Writer, stats importStats, dryRun bool) {
	verb := "Saved"
	if dryRun {
		verb = "Would save"
	}

	summary := fmt.Sprintf("  • Lines parsed: %d\n", stats.Lines) +
		fmt.Sprintf("  • %s: %d entries\n", verb, stats.Saved) +
		fmt.Sprintf("  • Need confirmation: %d\n", len(stats.Ambiguous)) +
		fmt.Sprintf("  • Not understood: %d", len(stats.Unparsed))
	_, _ = fmt.Fprintln(out, cli.RenderBox("Import complete", summary))

	for _, line := range stats.Ambiguous {
		_, _ = fmt.Fprintln(out, cli.FormatQuestion(line))
	}
	for _, line := range stats.Unparsed {
		_, _ = fmt.Fprintln(out, cli.FormatError(line))
	}
}
