package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/export"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/speed"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/valueprop"
)

var speedCmd = &cobra.Command{
	Use:   "speed <url>",
	Short: "Show a simulated website speed report",
	Long: `Show a simulated website speed report.

The numbers are derived from the URL itself and are the same on every run.
No request is made to the site.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(export.FormatText, export.FormatJSON)
		if err != nil {
			return err
		}

		report, err := speed.Analyze(args[0])
		if err != nil {
			return err
		}

		if format == export.FormatJSON {
			out, err := export.JSON(report)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out)
		}
		return writeOutput(cmd, export.SpeedText(report))
	},
}

var examplesCmd = &cobra.Command{
	Use:   "examples [industry]",
	Short: "List example canvas phrases for an industry",
	Long: `List example jobs, pains, gains, pain relievers and gain creators.

Without an argument the known industries are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(export.FormatText, export.FormatMarkdown, export.FormatJSON)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			industries := valueprop.Industries()
			if format == export.FormatJSON {
				out, err := export.JSON(industries)
				if err != nil {
					return err
				}
				return writeOutput(cmd, out)
			}
			return writeOutput(cmd, strings.Join(industries, "\n")+"\n")
		}

		industry := valueprop.ResolveIndustry(args[0])
		data := valueprop.ExampleData(industry)
		if format == export.FormatJSON {
			out, err := export.JSON(data)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out)
		}
		return writeOutput(cmd, export.ExamplesMarkdown(industry, data))
	},
}
