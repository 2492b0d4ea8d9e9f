package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Veraticus/kharcha/internal/cli"
	"github.com/Veraticus/kharcha/internal/model"
	"github.com/Veraticus/kharcha/internal/parser"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Parse a note without saving it",
		Long: `Parse a plain-language note and print the reply.

Examples:
  kharcha parse tea 10 and auto 50
  kharcha parse "hari borrowed 400" --json
  kharcha parse "1.5k from bank" --explain`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}

	cmd.Flags().Bool("json", false, "print candidates as JSON")
	cmd.Flags().Bool("explain", false, "show which rule matched each clause (rules only)")

	return cmd
}

// parseOutput is the JSON shape printed by parse --json.
type parseOutput struct {
	Reply    string            `json:"reply"`
	Source   model.Source      `json:"source"`
	Expenses []model.Candidate `json:"expenses"`
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	text, err := inputText(args)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	explain, _ := cmd.Flags().GetBool("explain")

	p, err := newParsing(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	if explain {
		return writeTrace(out, p.rules.Trace(text))
	}

	result := p.parse(ctx, text)
	if asJSON {
		return writeJSON(out, result)
	}

	_, err = fmt.Fprintln(out, cli.RenderReply(result.Reply))
	return err
}

func writeJSON(out io.Writer, result parser.Result) error {
	expenses := result.Candidates
	if expenses == nil {
		expenses = []model.Candidate{}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(parseOutput{
		Reply:    result.Reply,
		Source:   result.Source,
		Expenses: expenses,
	})
}

func writeTrace(out io.Writer, trace []parser.ClauseResult) error {
	if len(trace) == 0 {
		_, err := fmt.Fprintln(out, cli.FormatWarning("No clauses found"))
		return err
	}

	for i, clause := range trace {
		var line string
		if clause.Matched {
			line = fmt.Sprintf("%d. %q %s %s → %s",
				i+1, clause.Clause, cli.SubtleStyle.Render("via"), clause.Rule,
				parser.ReplyLine(clause.Candidate))
		} else {
			line = fmt.Sprintf("%d. %q %s", i+1, clause.Clause, cli.SubtleStyle.Render("(no rule matched)"))
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
