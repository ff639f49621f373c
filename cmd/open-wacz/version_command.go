package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dragounv/open-wacz/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (commit %s, %s)\n",
				version.ToolName, version.Version, version.Commit, version.GoVersion)
			return nil
		},
	}
}
