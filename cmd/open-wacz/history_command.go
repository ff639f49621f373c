package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dragounv/open-wacz/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past conversions recorded in the history ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			ledger, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history ledger: %w", err)
			}
			if ledger == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "History ledger is disabled; enable [history] in the configuration.")
				return nil
			}
			defer ledger.Close()

			records, err := ledger.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No conversions recorded yet.")
				return nil
			}

			if !isTerminal(out) {
				for _, rec := range records {
					fmt.Fprintf(out, "%s %s %s\n", rec.ConvertedAt, rec.HarvestName, rec.SourceArchive)
				}
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.ConvertedAt,
					rec.HarvestName,
					rec.SourceArchive,
					rec.HarvestPath,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Converted At", "Harvest", "Source Archive", "Destination"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
