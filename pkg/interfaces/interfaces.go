/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared types and contracts for the Akaylee Cracker. Defines the
engine configuration, search ranges, seed results, and the reporter contract
used by CLI frontends, without importing the engine itself.
*/

package interfaces

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/kleascm/akaylee-cracker/pkg/prng"
)

// Configuration errors. Recoverable: surfaced to the caller, mapped to exit
// codes by the CLI.
var (
	ErrInvalidDepth      = errors.New("depth must be at least 1")
	ErrInvalidWorkers    = errors.New("workers must be at least 1")
	ErrInvalidConfidence = errors.New("minimum confidence must be greater than 0 and at most 100")
)

// ErrNoObservations is returned when a search or inference is requested
// before any observed output has been supplied. Rejected before any worker
// is spawned.
var ErrNoObservations = errors.New("no observed outputs supplied")

// CrackerConfig holds the engine configuration. Treated as immutable once
// Validate has passed; observed outputs are NOT part of it and travel
// separately into search and inference calls.
type CrackerConfig struct {
	Variant       string  // registered generator name
	Depth         int     // outputs generated per candidate seed
	Workers       int     // size of the search worker pool
	MinConfidence float64 // inclusion threshold in percent (0, 100]
	LogLevel      string
	LogFormat     string
	LogDir        string
	ReportDir     string
	ReportFormat  string // "json", "yaml" or "html"
	SessionID     string
}

// NewDefaultConfig returns a config with the same defaults the CLI applies:
// the default variant, depth 1000, one worker per logical CPU, and a 100%
// confidence threshold.
func NewDefaultConfig() *CrackerConfig {
	return &CrackerConfig{
		Variant:       prng.DefaultVariant,
		Depth:         1000,
		Workers:       runtime.NumCPU(),
		MinConfidence: 100.0,
		LogLevel:      "info",
		LogFormat:     "text",
		ReportFormat:  "json",
	}
}

// Validate checks the search parameters. It does not fill defaults; that is
// the CLI layer's job.
func (c *CrackerConfig) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.Depth)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if c.MinConfidence <= 0 || c.MinConfidence > 100 {
		return fmt.Errorf("%w: got %g", ErrInvalidConfidence, c.MinConfidence)
	}
	if !prng.IsSupported(c.Variant) {
		return fmt.Errorf("%w: %q", prng.ErrUnknownVariant, c.Variant)
	}
	return nil
}

// SeedResult is one recovered candidate: the seed and how well its output
// matched the observations.
type SeedResult struct {
	Seed       uint32  `json:"seed" yaml:"seed"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// SearchRange is a half-open interval [Lower, Upper) over the 32-bit seed
// space. The space does not wrap: Upper is capped at the maximum
// representable value, and an inverted range is simply empty.
type SearchRange struct {
	Lower uint32 `json:"lower" yaml:"lower"`
	Upper uint32 `json:"upper" yaml:"upper"`
}

// FullRange covers every representable seed the engine can test.
func FullRange() SearchRange {
	return SearchRange{Lower: 0, Upper: ^uint32(0)}
}

// Width returns the number of candidate seeds in the range.
func (r SearchRange) Width() uint64 {
	if r.Upper <= r.Lower {
		return 0
	}
	return uint64(r.Upper) - uint64(r.Lower)
}

func (r SearchRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Lower, r.Upper)
}

// SearchReporter receives search telemetry. Implementations must tolerate
// concurrent OnSeedFound calls from multiple workers.
type SearchReporter interface {
	// OnSeedFound fires as soon as a worker records a matching seed
	OnSeedFound(result SeedResult)

	// OnSearchComplete fires once, after all workers have drained
	OnSearchComplete(results []SeedResult, evaluated uint64)
}
