/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: check.go
Description: Self-check command for the Akaylee Cracker. Validates CPU
availability, registry integrity, round-trip recovery correctness, and
output directory writability before a long session is started.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kleascm/akaylee-cracker/pkg/logging"
	"github.com/kleascm/akaylee-cracker/pkg/prng"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// PerformSelfCheck performs comprehensive system validation
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Akaylee Cracker - System Self-Check")
	fmt.Println("======================================")
	fmt.Println()

	if err := LoadConfig(); err != nil {
		return err
	}

	checks := []struct {
		name     string
		function func() error
	}{
		{"CPU Availability", checkCPUAvailability},
		{"Registry Integrity", checkRegistryIntegrity},
		{"Generator Determinism", checkGeneratorDeterminism},
		{"State Recovery Round-Trip", checkRecoveryRoundTrip},
		{"Output Directory Writability", checkOutputWritability},
		{"Log Housekeeping", checkLogHousekeeping},
	}

	passed := 0
	total := len(checks)

	for _, check := range checks {
		fmt.Printf("🔍 %s... ", check.name)
		if err := check.function(); err != nil {
			fmt.Printf("❌ FAILED: %v\n", err)
		} else {
			fmt.Println("✅ PASSED")
			passed++
		}
	}

	fmt.Println()
	fmt.Printf("📊 Results: %d/%d checks passed\n", passed, total)

	if passed == total {
		fmt.Println("✨ All checks passed! System is ready for recovery sessions.")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Please address the issues before starting a session.")
	return fmt.Errorf("%d/%d checks failed", total-passed, total)
}

// checkCPUAvailability verifies at least one worker can be scheduled
func checkCPUAvailability() error {
	cpus := runtime.NumCPU()
	if cpus < 1 {
		return fmt.Errorf("no logical CPUs reported")
	}
	return nil
}

// checkRegistryIntegrity constructs every registered variant
func checkRegistryIntegrity() error {
	names := prng.Names()
	if len(names) == 0 {
		return fmt.Errorf("variant registry is empty")
	}
	if names[0] != prng.DefaultVariant {
		return fmt.Errorf("default variant %q is not listed first", prng.DefaultVariant)
	}
	for _, name := range names {
		g, err := prng.New(name)
		if err != nil {
			return err
		}
		if g.Name() != name {
			return fmt.Errorf("variant %q reports name %q", name, g.Name())
		}
	}
	return nil
}

// checkGeneratorDeterminism verifies same seed, same sequence
func checkGeneratorDeterminism() error {
	for _, name := range prng.Names() {
		a, err := prng.Generate(name, 0xDEADBEEF, 32)
		if err != nil {
			return err
		}
		b, err := prng.Generate(name, 0xDEADBEEF, 32)
		if err != nil {
			return err
		}
		for i := range a {
			if a[i] != b[i] {
				return fmt.Errorf("variant %q diverged at output %d", name, i)
			}
		}
	}
	return nil
}

// checkRecoveryRoundTrip exercises untemper-based recovery on every variant
// that claims to support it
func checkRecoveryRoundTrip() error {
	for _, name := range prng.Names() {
		probe, err := prng.New(name)
		if err != nil {
			return err
		}
		recoverer, ok := probe.(prng.StateRecoverer)
		if !ok {
			continue
		}

		source, _ := prng.New(name)
		source.Seed(31337)
		window := make([]uint32, recoverer.StateLen())
		for i := range window {
			window[i] = source.Next()
		}

		if err := recoverer.RecoverState(window); err != nil {
			return fmt.Errorf("variant %q: %w", name, err)
		}
		for i := 0; i < 16; i++ {
			if got, want := recoverer.Next(), source.Next(); got != want {
				return fmt.Errorf("variant %q: continuation diverged at output %d", name, i)
			}
		}
	}
	return nil
}

// checkLogHousekeeping rotates oversized session logs, prunes old ones, and
// verifies the log directory can be inventoried
func checkLogHousekeeping() error {
	logDir := viper.GetString("log_dir")
	if logDir == "" {
		return nil
	}

	manager := logging.NewLogManager(logDir, 10, 100*1024*1024, false)
	if err := manager.RotateLogs(); err != nil {
		return fmt.Errorf("rotation failed: %w", err)
	}
	if err := manager.CleanupOldLogs(); err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}
	if _, err := manager.GetLogStats(); err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}
	return nil
}

// checkOutputWritability verifies the log and report directories accept writes
func checkOutputWritability() error {
	for _, dir := range []string{viper.GetString("log_dir"), viper.GetString("report_dir")} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create %s: %w", dir, err)
		}
		probe := filepath.Join(dir, ".akaylee-check")
		if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
			return fmt.Errorf("cannot write to %s: %w", dir, err)
		}
		os.Remove(probe)
	}
	return nil
}
