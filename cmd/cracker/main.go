/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee Cracker. Provides
comprehensive command-line options, configuration management, and beautiful
user interface for controlling PRNG seed and state recovery sessions.
*/

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kleascm/akaylee-cracker/cmd/cracker/commands"
	"github.com/kleascm/akaylee-cracker/pkg/interfaces"
	"github.com/kleascm/akaylee-cracker/pkg/prng"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logDir     string

	// Reporting configuration
	reportDir    string
	reportFormat string

	// Recovery configuration
	inputFile     string
	variant       string
	depth         int
	threads       int
	minConfidence float64
	lowerSeed     uint32
	upperSeed     uint32
	timeWindow    bool
	skipInference bool

	// Generation configuration
	genSeed    uint32
	genVariant string
	genDepth   int
	genInput   string
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-cracker",
		Short: "Akaylee Cracker - PRNG seed and state recovery engine",
		Long: `Akaylee Cracker recovers the internal seed or state of a pseudo-random number
generator from a sequence of its observed outputs. It brute-forces candidate
seeds across a configurable range with a parallel worker pool, or, for
generators whose output transform is invertible (Mersenne Twister family,
xorshift), reconstructs the internal state directly without searching.`,
		Version: commands.Version,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&reportDir, "report-dir", "./reports", "Session report output directory")
	rootCmd.PersistentFlags().StringVar(&reportFormat, "report-format", "json", "Session report format (json, yaml, html)")

	// Bind persistent flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("report_dir", rootCmd.PersistentFlags().Lookup("report-dir"))
	viper.BindPFlag("report_format", rootCmd.PersistentFlags().Lookup("report-format"))

	// Add recover command
	recoverCmd := &cobra.Command{
		Use:   "recover",
		Short: "Recover the seed or internal state behind a sequence of outputs",
		Long: `Recover the unknown seed or internal state that produced a file of observed
PRNG outputs. State inference is attempted first when the selected variant
supports it; otherwise the seed range is brute-forced across the worker pool
with live progress display.`,
		RunE: commands.RunRecover,
	}

	recoverCmd.Flags().StringVarP(&inputFile, "input", "i", "", "File of observed outputs, one integer per line (required)")
	recoverCmd.Flags().StringVarP(&variant, "variant", "r", prng.DefaultVariant, "Generator variant to assume")
	recoverCmd.Flags().IntVarP(&depth, "depth", "d", 1000, "Outputs generated per candidate seed")
	recoverCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of search workers (0 = logical CPU count)")
	recoverCmd.Flags().Float64VarP(&minConfidence, "min-confidence", "c", 100.0, "Minimum match confidence percent (0, 100]")
	recoverCmd.Flags().Uint32Var(&lowerSeed, "lower", 0, "Lower bound of the seed search range (inclusive)")
	recoverCmd.Flags().Uint32Var(&upperSeed, "upper", ^uint32(0), "Upper bound of the seed search range (exclusive)")
	recoverCmd.Flags().BoolVarP(&timeWindow, "time-window", "u", false, "Search Unix-timestamp seeds within one year of now")
	recoverCmd.Flags().BoolVar(&skipInference, "skip-inference", false, "Skip state inference and go straight to brute force")

	recoverCmd.MarkFlagRequired("input")

	viper.BindPFlag("recover.input", recoverCmd.Flags().Lookup("input"))
	viper.BindPFlag("recover.variant", recoverCmd.Flags().Lookup("variant"))
	viper.BindPFlag("recover.depth", recoverCmd.Flags().Lookup("depth"))
	viper.BindPFlag("recover.threads", recoverCmd.Flags().Lookup("threads"))
	viper.BindPFlag("recover.min_confidence", recoverCmd.Flags().Lookup("min-confidence"))
	viper.BindPFlag("recover.lower", recoverCmd.Flags().Lookup("lower"))
	viper.BindPFlag("recover.upper", recoverCmd.Flags().Lookup("upper"))
	viper.BindPFlag("recover.time_window", recoverCmd.Flags().Lookup("time-window"))
	viper.BindPFlag("recover.skip_inference", recoverCmd.Flags().Lookup("skip-inference"))

	rootCmd.AddCommand(recoverCmd)

	// Add generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a sample output stream from a seed or recovered state",
		Long: `Generate outputs from a known seed, for building test fixtures, or continue
the sequence of an unknown generator by inferring its state from a file of
observed outputs first.`,
		RunE: commands.RunGenerate,
	}

	generateCmd.Flags().Uint32VarP(&genSeed, "seed", "g", 0, "Seed to generate from")
	generateCmd.Flags().StringVarP(&genVariant, "variant", "r", prng.DefaultVariant, "Generator variant")
	generateCmd.Flags().IntVarP(&genDepth, "depth", "d", 0, "Outputs to emit (0 = pseudo-random sample length)")
	generateCmd.Flags().StringVarP(&genInput, "input", "i", "", "Observations file: infer state and emit the continuation instead")

	viper.BindPFlag("generate.seed", generateCmd.Flags().Lookup("seed"))
	viper.BindPFlag("generate.variant", generateCmd.Flags().Lookup("variant"))
	viper.BindPFlag("generate.depth", generateCmd.Flags().Lookup("depth"))
	viper.BindPFlag("generate.input", generateCmd.Flags().Lookup("input"))

	rootCmd.AddCommand(generateCmd)

	// Add list-variants command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list-variants",
		Short: "List supported generator variants and their capabilities",
		Long: `List all generator variants the cracker can model, with a description of each
algorithm and whether its internal state can be recovered directly from
observed outputs.`,
		Run: commands.ListVariants,
	})

	// Add check command for built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Perform system checks to validate CPU availability, registry integrity,
round-trip recovery correctness, and output directory writability. Very
useful for CI/CD integration.`,
		RunE: commands.PerformSelfCheck,
	})

	// Add report command for re-rendering saved sessions
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Re-render a saved session report",
		Long: `Load a previously written JSON session report and render it again in another
format, typically a self-contained HTML page for sharing.`,
		RunE: commands.RunReport,
	}

	reportCmd.Flags().String("session", "", "Path to a saved JSON session report (required)")
	reportCmd.Flags().String("format", "html", "Output format (json, yaml, html)")
	reportCmd.MarkFlagRequired("session")

	viper.BindPFlag("report.session", reportCmd.Flags().Lookup("session"))
	viper.BindPFlag("report.format", reportCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(reportCmd)

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run:   commands.PrintVersion,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code: 1 for configuration and
// input mistakes the user can fix, 2 for runtime failures.
func exitCode(err error) int {
	switch {
	case errors.Is(err, interfaces.ErrInvalidDepth),
		errors.Is(err, interfaces.ErrInvalidWorkers),
		errors.Is(err, interfaces.ErrInvalidConfidence),
		errors.Is(err, interfaces.ErrNoObservations),
		errors.Is(err, prng.ErrUnknownVariant):
		return 1
	default:
		return 2
	}
}
