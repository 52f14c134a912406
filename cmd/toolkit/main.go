// Command toolkit runs the growth toolkit engines from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/config"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/export"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/logging"
)

var (
	// Global flags
	verbose    bool
	formatName string
	outputPath string

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "toolkit",
	Short: "Pricing, value proposition and website speed generators",
	Long: `toolkit runs the growth toolkit generators locally.

Inputs are read from YAML or JSON files; results are printed as text,
Markdown, CSV or JSON.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&formatName, "format", "f", "text", "Output format: text, markdown, csv, json")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write output to a file instead of stdout")

	rootCmd.AddCommand(pricingCmd, valuePropCmd, examplesCmd, speedCmd)
}

// writeOutput prints text to stdout or to --output.
func writeOutput(cmd *cobra.Command, text string) error {
	if outputPath == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("output written", zap.String("path", outputPath))
	return nil
}

// outputFormat parses --format and rejects formats the command cannot render.
func outputFormat(supported ...export.Format) (export.Format, error) {
	f, err := export.ParseFormat(formatName)
	if err != nil {
		return "", err
	}
	for _, s := range supported {
		if f == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s is not available for this command", export.ErrUnknownFormat, f)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
