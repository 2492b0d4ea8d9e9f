package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/kharcha/internal/cli"
	"github.com/Veraticus/kharcha/internal/common"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete saved entries",
		Long:  `Delete saved entries by ID. Use "kharcha list --ids" to find them.`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()
	var missing []string
	for _, id := range args {
		err := store.DeleteTransaction(ctx, id)
		switch {
		case errors.Is(err, common.ErrNotFound):
			missing = append(missing, id)
			_, _ = fmt.Fprintln(out, cli.FormatWarning("No entry "+id))
		case err != nil:
			return err
		default:
			_, _ = fmt.Fprintln(out, cli.FormatSuccess("Deleted "+id))
		}
	}

	if len(missing) > 0 {
		return common.NewUserError(fmt.Sprintf("%d of %d entries not found", len(missing), len(args)), nil)
	}
	return nil
}
