package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/kharcha/internal/cli"
	"github.com/Veraticus/kharcha/internal/common"
	"github.com/Veraticus/kharcha/internal/service"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show saved entries",
		Long: `Show saved entries, newest first.

Examples:
  kharcha list --limit 10
  kharcha list --category loan --paid-by hari
  kharcha list --since 30d --summary`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().IntP("limit", "n", 20, "maximum entries to show (0 for all)")
	cmd.Flags().StringP("category", "c", "", "only this category")
	cmd.Flags().StringP("paid-by", "p", "", "only entries with this person or institution")
	cmd.Flags().String("since", "", "only entries since a date (2006-01-02) or age (7d, 12h)")
	cmd.Flags().Bool("summary", false, "show totals per category instead of entries")
	cmd.Flags().Bool("ids", false, "show entry IDs (for kharcha delete)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	filter, err := listFilter(cmd, time.Now())
	if err != nil {
		return err
	}
	summary, _ := cmd.Flags().GetBool("summary")
	showIDs, _ := cmd.Flags().GetBool("ids")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if summary {
		totals, err := store.SummarizeByCategory(ctx, filter)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(totals))
		return err
	}

	txns, err := store.ListTransactions(ctx, filter)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTransactions(txns, showIDs))
	return err
}

func listFilter(cmd *cobra.Command, now time.Time) (service.TransactionFilter, error) {
	limit, _ := cmd.Flags().GetInt("limit")
	category, _ := cmd.Flags().GetString("category")
	paidBy, _ := cmd.Flags().GetString("paid-by")
	sinceFlag, _ := cmd.Flags().GetString("since")

	if limit < 0 {
		return service.TransactionFilter{}, common.NewUserError("--limit must not be negative", nil)
	}

	filter := service.TransactionFilter{
		Limit:    limit,
		Category: strings.TrimSpace(category),
		PaidBy:   strings.TrimSpace(paidBy),
	}

	if sinceFlag != "" {
		since, err := parseSince(sinceFlag, now)
		if err != nil {
			return service.TransactionFilter{}, common.NewUserError(fmt.Sprintf("invalid --since %q", sinceFlag), err)
		}
		filter.Since = &since
	}
	return filter, nil
}

// parseSince accepts a local date (2006-01-02), a Go duration (12h) or a
// number of days (7d) and returns the matching start time.
func parseSince(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.ParseInLocation("2006-01-02", value, now.Location()); err == nil {
		return t, nil
	}

	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("bad day count %q", days)
		}
		return now.AddDate(0, 0, -n), nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return time.Time{}, err
	}
	if d < 0 {
		return time.Time{}, fmt.Errorf("negative duration %s", d)
	}
	return now.Add(-d), nil
}
