package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"holidaygen/internal/localization"
	"holidaygen/internal/logger"
)

var trimCmd = &cobra.Command{
	Use:   "trim-strings COUNT",
	Short: "Remove trailing entries from the bundle's Localizable.strings files",
	Long: `Removes the last COUNT lines from Localizable.strings in every .lproj
directory of the bundle. Used to drop holiday names that are no longer
generated.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrim,
}

func init() {
	rootCmd.AddCommand(trimCmd)
}

func runTrim(cmd *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid line count %q: %w", args[0], err)
	}

	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.Logging.Level)

	results, err := localization.RemoveTrailingEntries(cfg.Output.Dir, count)
	for _, res := range results {
		log.Info("Trimmed strings file", "path", res.Path, "removed", res.Removed)
	}

	if err != nil {
		return err
	}

	if len(results) == 0 {
		log.Warn("No strings files found", "bundle", cfg.Output.Dir)
	}

	return nil
}
