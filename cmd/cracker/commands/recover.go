/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: recover.go
Description: Recover command implementation for the Akaylee Cracker. Loads
observed outputs, attempts direct state inference, falls back to the parallel
brute-force seed search with a live progress display, and writes the session
report.
*/

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/kleascm/akaylee-cracker/pkg/core"
	"github.com/kleascm/akaylee-cracker/pkg/inference"
	"github.com/kleascm/akaylee-cracker/pkg/interfaces"
	"github.com/kleascm/akaylee-cracker/pkg/monitoring"
	"github.com/kleascm/akaylee-cracker/pkg/observed"
	"github.com/kleascm/akaylee-cracker/pkg/prng"
	"github.com/kleascm/akaylee-cracker/pkg/reporting"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// RunRecover executes the main recovery process
func RunRecover(cmd *cobra.Command, args []string) error {
	fmt.Println("🔓 Akaylee Cracker - Starting Recovery Session")
	fmt.Println("==============================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	// Create recovery configuration
	config := createCrackerConfig()

	// Load observations
	inputPath := viper.GetString("recover.input")
	observations, err := observed.ReadFile(inputPath, SessionLogger())
	if err != nil {
		return err
	}
	if len(observations) == 0 {
		return fmt.Errorf("%w: %s holds no parseable integers", interfaces.ErrNoObservations, inputPath)
	}
	fmt.Printf("📥 Loaded %d observations from %s\n", len(observations), inputPath)

	// Create and initialize the engine on the session logger, so engine and
	// worker events land in the session log file
	engine := core.NewEngine()
	engine.SetLogger(SessionLogger())
	if err := engine.Initialize(config); err != nil {
		return err
	}
	engine.AddReporter(core.NewLoggerReporter(SessionLogger()))
	fmt.Printf("🆔 Session %s | variant %s\n\n", config.SessionID, config.Variant)

	report := &reporting.SessionReport{
		SessionID:     config.SessionID,
		Version:       Version,
		Variant:       config.Variant,
		Depth:         config.Depth,
		Workers:       config.Workers,
		MinConfidence: config.MinConfidence,
		Observations:  len(observations),
	}

	// Try the fast path first: direct state reconstruction
	if !viper.GetBool("recover.skip_inference") && prng.SupportsRecovery(config.Variant) {
		if done, err := tryInference(engine, config, observations, report); done || err != nil {
			return err
		}
	}

	// Brute force. Pick the range: explicit bounds, or a +/- one year
	// window of Unix-timestamp seeds around now.
	rng := interfaces.SearchRange{
		Lower: uint32(viper.GetUint64("recover.lower")),
		Upper: uint32(viper.GetUint64("recover.upper")),
	}
	if viper.GetBool("recover.time_window") {
		now := time.Now().Unix()
		const year = 365 * 24 * 60 * 60
		rng = interfaces.SearchRange{Lower: uint32(now - year), Upper: uint32(now + year)}
	}
	report.Mode = "bruteforce"
	report.Range = rng

	fmt.Printf("🚀 Brute-forcing %s candidates in %s across %d workers\n",
		humanCount(rng.Width()), rng.String(), config.Workers)
	sessionLogging.LogSearchStart(config.Variant, rng.Lower, rng.Upper, config.Workers, config.Depth, nil)

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		fmt.Println("\n🛑 Received shutdown signal, stopping search...")
		cancel()
	}()

	// Run the search in the background so the display owns this goroutine
	type outcome struct {
		results []interfaces.SeedResult
		err     error
	}
	outcomeChan := make(chan outcome, 1)
	go func() {
		results, err := engine.Bruteforce(ctx, observations, rng)
		outcomeChan <- outcome{results, err}
	}()

	// Live progress line fed by the monitoring sampler
	var frame uint64
	monitor := monitoring.NewMonitor(engine.Progress(), 250*time.Millisecond, SessionLogger(), func(s monitoring.Sample) {
		n := atomic.AddUint64(&frame, 1)
		eta := "--"
		if s.ETA > 0 {
			eta = s.ETA.Round(time.Second).String()
		}
		fmt.Printf("\r%s %6.2f%% | %s/%s seeds | %8.0f seeds/s | ETA %-8s",
			spinnerFrames[n%uint64(len(spinnerFrames))], s.Percent,
			humanCount(s.Evaluated), humanCount(s.Target), s.Rate, eta)
	})
	if err := monitor.Start(ctx); err != nil {
		return err
	}

	result := <-outcomeChan
	monitor.Stop()
	fmt.Println()

	stats := engine.GetStats()
	report.Evaluated = engine.Progress().Total()
	report.Elapsed = stats.Elapsed()
	report.Rate = stats.SeedsPerSecond
	report.Results = result.results
	report.Cancelled = errors.Is(result.err, context.Canceled)

	if result.err != nil && !report.Cancelled {
		return result.err
	}

	printResults(result.results, config.MinConfidence, report.Cancelled)
	writeReport(config, report)

	fmt.Println("\n✨ Recovery session completed!")
	return nil
}

// tryInference attempts direct state reconstruction. Returns done=true when
// the session is finished (success); insufficient observations or a
// mismatch fall through to brute force.
func tryInference(engine *core.Engine, config *interfaces.CrackerConfig, observations []uint32, report *reporting.SessionReport) (bool, error) {
	fmt.Println("🧠 Attempting direct state inference...")

	start := time.Now()
	err := engine.InferState(observations)
	if err != nil {
		switch {
		case errors.Is(err, prng.ErrInsufficientWindow):
			fmt.Printf("⚠️  %v — falling back to brute force\n\n", err)
			return false, nil
		case errors.Is(err, inference.ErrInferenceMismatch):
			fmt.Printf("⚠️  %v — falling back to brute force\n\n", err)
			return false, nil
		default:
			return false, err
		}
	}

	window, validated := engine.RecoveredWindow()
	fmt.Printf("✅ Internal state recovered in %s (window %d, %d observations validated)\n",
		time.Since(start).Round(time.Microsecond), window, validated)
	sessionLogging.LogStateRecovered(config.Variant, window, validated, nil)

	sample, err := engine.GenerateFromState(8)
	if err != nil {
		return false, err
	}
	fmt.Println("🔮 Next outputs of the target generator:")
	for _, v := range sample {
		fmt.Printf("   %d\n", v)
	}

	report.Mode = "inference"
	report.StateRecovered = true
	report.Elapsed = time.Since(start)
	writeReport(config, report)

	fmt.Println("\n✨ Recovery session completed!")
	return true, nil
}

// printResults renders the final seed table
func printResults(results []interfaces.SeedResult, minConfidence float64, cancelled bool) {
	fmt.Println()
	if len(results) == 0 {
		if cancelled {
			fmt.Println("🛑 Search cancelled before any seed cleared the threshold.")
		} else {
			fmt.Printf("📭 No seed cleared the %.2f%% confidence threshold.\n", minConfidence)
		}
		return
	}

	fmt.Printf("🔑 Recovered %d candidate seed(s):\n\n", len(results))
	fmt.Printf("   %-12s %-12s %s\n", "SEED", "HEX", "CONFIDENCE")
	for _, r := range results {
		fmt.Printf("   %-12d 0x%08x   %.2f%%\n", r.Seed, r.Seed, r.Confidence)
	}
}

// writeReport persists the session report; failures are warnings, not fatal
func writeReport(config *interfaces.CrackerConfig, report *reporting.SessionReport) {
	writer := reporting.NewWriter(config.ReportDir, SessionLogger())
	path, err := writer.Write(report, config.ReportFormat)
	if err != nil {
		fmt.Printf("⚠️  Failed to write session report: %v\n", err)
		return
	}
	fmt.Printf("📊 Session report written to %s\n", path)
}

// humanCount renders large candidate counts compactly
func humanCount(n uint64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(n)/1_000_000)
	case n >= 10_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
