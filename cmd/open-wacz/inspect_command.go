package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dragounv/open-wacz/internal/wacz"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <wacz-file>",
		Short: "Show manifest metadata and capture entries without converting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := wacz.Open(args[0])
			if err != nil {
				return err
			}
			defer container.Close()

			meta, err := container.Metadata()
			if err != nil {
				return err
			}

			fields := [][2]string{
				{"file", container.BaseName()},
				{"created", meta.Created},
				{"period", meta.Period},
			}
			optional := [][2]string{
				{"title", meta.Title},
				{"software", meta.Software},
				{"main_page_url", meta.MainPageURL},
				{"main_page_date", meta.MainPageDate},
			}
			for _, field := range optional {
				if field[1] != "" {
					fields = append(fields, field)
				}
			}

			entries := container.EntriesUnder(wacz.ArchiveDir)
			out := cmd.OutOrStdout()

			if !isTerminal(out) {
				for _, field := range fields {
					fmt.Fprintf(out, "%s: %s\n", field[0], field[1])
				}
				for _, entry := range entries {
					if entry.IsDir() {
						continue
					}
					fmt.Fprintf(out, "entry: %s %d\n", entry.Name(), entry.UncompressedSize())
				}
				return nil
			}

			metaRows := make([][]string, 0, len(fields))
			for _, field := range fields {
				metaRows = append(metaRows, []string{field[0], field[1]})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Field", "Value"},
				metaRows,
				[]columnAlignment{alignLeft, alignLeft},
			))

			entryRows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				entryRows = append(entryRows, []string{
					entry.Name(),
					strconv.FormatUint(entry.UncompressedSize(), 10),
				})
			}
			if len(entryRows) > 0 {
				fmt.Fprintln(out, renderTable(
					[]string{"Capture Entry", "Bytes"},
					entryRows,
					[]columnAlignment{alignLeft, alignRight},
				))
			}
			return nil
		},
	}
}
