package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dragounv/open-wacz/internal/harvest"
	"github.com/dragounv/open-wacz/internal/history"
	"github.com/dragounv/open-wacz/internal/logging"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <wacz-file> <target-directory>",
		Short: "Convert a WACZ file into a harvest directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			archivePath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve archive path: %w", err)
			}
			info, err := os.Stat(archivePath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("wacz file does not exist: %s", archivePath)
				}
				return fmt.Errorf("inspect wacz file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("%s is a directory", archivePath)
			}

			targetDir, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("resolve target directory: %w", err)
			}
			if info, err := os.Stat(targetDir); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("target directory does not exist: %s", targetDir)
				}
				return fmt.Errorf("inspect target directory: %w", err)
			} else if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", targetDir)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			ledger, err := history.Open(cfg)
			if err != nil {
				// A broken ledger should not block conversions.
				logger.Warn("history ledger unavailable", logging.Error(err))
				ledger = nil
			}
			defer ledger.Close()

			converter := harvest.NewConverter(cfg, logger, ledger)
			result, err := converter.Convert(cmd.Context(), archivePath, targetDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created harvest %s\n", result.HarvestName)
			fmt.Fprintf(out, "  path: %s\n", result.HarvestPath)
			fmt.Fprintf(out, "  capture files: %d\n", result.Relocated)
			if result.CaptureFile != "" {
				fmt.Fprintf(out, "  renamed capture: %s\n", filepath.Base(result.CaptureFile))
			}
			return nil
		},
	}
}
