// revmodel is the analyst CLI for the partnership revenue / vehicle TCO
// projection engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"revenue_model/pkg/core/params"
	"revenue_model/pkg/core/scenario"
)

var (
	flagPreset   string
	flagScenario string
	flagFormat   string
	flagOut      string
	flagVerbose  bool

	log = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "revmodel",
	Short: "Partnership revenue and vehicle TCO projection engine",
	Long: "Project recurring partnership revenue and vehicle total cost of ownership\n" +
		"over a multi-period horizon, and analyze profit, break-even and sensitivity.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !flagVerbose {
			return nil
		}
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger init: %w", err)
		}
		log = logger
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Named scenario preset (see 'revmodel presets')")
	rootCmd.PersistentFlags().StringVar(&flagScenario, "scenario", "", "Scenario file (.yaml, .yml or .hjson)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "table", "Output format: table, csv or json")
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "", "Write output to file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log diagnostics to stderr")
}

// resolveBundle builds the parameter bundle from --scenario or --preset,
// falling back to the baseline defaults.
func resolveBundle() (params.Bundle, error) {
	if flagScenario != "" && flagPreset != "" {
		return params.Bundle{}, fmt.Errorf("--scenario and --preset are mutually exclusive")
	}
	if flagScenario != "" {
		log.Info("loading scenario file", zap.String("path", flagScenario))
		return scenario.LoadFile(flagScenario)
	}
	if flagPreset != "" {
		log.Info("using preset", zap.String("name", flagPreset))
		return scenario.Preset(flagPreset)
	}
	return params.Default(), nil
}

// outWriter returns the destination stream for command output.
func outWriter() (*os.File, func(), error) {
	if flagOut == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(flagOut)
	if err != nil {
		return nil, nil, fmt.Errorf("open output: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func main() {
	godotenv.Load()
	err := rootCmd.Execute()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
