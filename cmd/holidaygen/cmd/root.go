package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"holidaygen/internal/config"
	"holidaygen/internal/formatter"
	"holidaygen/internal/localization"
	"holidaygen/internal/logger"
	"holidaygen/internal/normalizer"
	"holidaygen/internal/pipeline"
	"holidaygen/internal/plistio"
	"holidaygen/internal/provider"
)

var (
	cfgFile   string
	outputDir string
	startYear int
	endYear   int
	format    string
	logLevel  string
	summary   bool
	localize  bool
)

var rootCmd = &cobra.Command{
	Use:   "holidaygen CODE...",
	Short: "Generate per-country holiday property lists",
	Long: `holidaygen computes the public holidays of each given country over a
fixed range of years and writes one property list per country into the
application bundle (holidays-<code>.plist).

Country codes are ISO style codes such as US, CA or GB.`,
	Args:    cobra.MinimumNArgs(1),
	Example: "  holidaygen US CA\n  holidaygen --start-year 2024 --end-year 2030 --summary US",
	RunE:    runGenerate,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (default: built-in settings)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "bundle directory receiving the files (overrides output.dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides logging.level)")
	rootCmd.Flags().IntVar(&startYear, "start-year", 0, "first generated year (overrides years.start)")
	rootCmd.Flags().IntVar(&endYear, "end-year", 0, "year after the last generated year (overrides years.end)")
	rootCmd.Flags().StringVar(&format, "format", "", "plist format, xml or binary (overrides output.format)")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "print a table of the generated holidays")
	rootCmd.Flags().BoolVar(&localize, "localize", false, "write localization keys with each holiday")
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if cfgFile != "" {
		loaded, err := config.LoadConfig(cfgFile)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	flags := cmd.Flags()

	if flags.Changed("output-dir") {
		cfg.Output.Dir = outputDir
	}

	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(logLevel)
	}

	if flags.Changed("start-year") {
		cfg.Years.Start = startYear
	}

	if flags.Changed("end-year") {
		cfg.Years.End = endYear
	}

	if flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(format)
	}

	if flags.Changed("summary") {
		cfg.Logging.Summary = summary
	}

	if flags.Changed("localize") {
		cfg.Localization.Enabled = localize
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewLogger(cfg.Logging.Level)
	log.Debug("Loaded configuration", "config", cfg.String())

	if cfg.Output.CreateDir {
		if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	writer, err := plistio.NewWriter(cfg.Output.Dir, cfg.Output.FilePattern, cfg.Output.Format)
	if err != nil {
		return err
	}

	var resolver *localization.Resolver
	if cfg.Localization.Enabled {
		resolver = localization.NewResolver(cfg.Localization.Keys, nil)
	}

	p := pipeline.New(pipeline.Options{
		Provider:  provider.NewCalendarProvider(),
		Processor: normalizer.NewProcessor(log),
		Writer:    writer,
		Resolver:  resolver,
		Logger:    log,
		StartYear: cfg.Years.Start,
		EndYear:   cfg.Years.End,
		Verify:    cfg.Output.Verify,
	})

	results, runErr := p.Run(args)

	if cfg.Logging.Summary {
		out := cmd.OutOrStdout()
		for _, res := range results {
			fmt.Fprintf(out, "\n%s (%s)\n", res.Country, res.Metadata.Path)
			fmt.Fprint(out, formatter.SummaryTable(res.File))
		}
	}

	if runErr != nil {
		return fmt.Errorf("%d of %d countries failed: %w", len(args)-len(results), len(args), runErr)
	}

	return nil
}
