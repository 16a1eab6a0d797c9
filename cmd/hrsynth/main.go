package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hrsynth/internal/config"
	"hrsynth/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  = logging.NewNop()
)

// flagKeys maps persistent flags onto configuration keys.
var flagKeys = map[string]string{
	"seed":           "data_generation.seed",
	"count":          "data_generation.sample_size",
	"reference-date": "data_generation.reference_date",
	"output-dir":     "data_generation.output_dir",
	"report-dir":     "data_generation.report_dir",
	"workers":        "data_generation.workers",
	"log-level":      "logging.level",
	"log-json":       "logging.json",
}

var rootCmd = &cobra.Command{
	Use:   "hrsynth",
	Short: "Synthetic HR attrition dataset generator",
	Long: `hrsynth generates a fictitious workforce: demographics, employment history,
performance, career progression, compensation and departure details for
several thousand employees, driven by a tenure-dependent attrition hazard.

Output is a CSV table plus a summary report in Markdown and YAML.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		v := config.New(cfgFile)
		if err := bindFlags(v, cmd); err != nil {
			return err
		}
		loaded, err := config.Load(v)
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := logging.NewLogger(logging.Options{Level: cfg.Logging.Level, JSON: cfg.Logging.JSON})
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("Configuration loaded", "config_file", v.ConfigFileUsed())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Parameter file (default: params.yaml in . or ./config)")
	rootCmd.PersistentFlags().Int64("seed", 42, "Random seed")
	rootCmd.PersistentFlags().Int("count", 5000, "Number of employees to generate")
	rootCmd.PersistentFlags().String("reference-date", "2025-05-01", "Simulation reference date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("output-dir", "data/raw", "Dataset output directory")
	rootCmd.PersistentFlags().String("report-dir", "reports/data_generation", "Report output directory")
	rootCmd.PersistentFlags().Int("workers", 0, "Parallel workers (default: number of CPUs)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit JSON logs")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
