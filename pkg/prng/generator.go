/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generator.go
Description: Generator interfaces and the variant registry for the Akaylee Cracker.
Defines the closed set of supported PRNG algorithms, construction and lookup,
and the optional state recovery capability for invertible generators.
*/

package prng

import (
	"errors"
	"fmt"
)

// Package errors. All are recoverable and surfaced to callers; the CLI maps
// them to exit codes.
var (
	// ErrUnknownVariant indicates a generator name that is not registered
	ErrUnknownVariant = errors.New("unknown generator variant")

	// ErrInvalidDepth indicates a non-positive output count
	ErrInvalidDepth = errors.New("depth must be at least 1")

	// ErrRecoveryUnsupported indicates a variant whose output transform
	// cannot be inverted (bits are discarded on the way out)
	ErrRecoveryUnsupported = errors.New("variant does not support state recovery")

	// ErrInsufficientWindow indicates too few consecutive outputs to
	// rebuild the internal state
	ErrInsufficientWindow = errors.New("insufficient output window for state recovery")
)

// Generator is the behavior every supported PRNG algorithm implements.
// Each instance reproduces the exact bit-level arithmetic of the real-world
// generator it models, so candidate output can be compared to observed output
// element by element. Instances are NOT safe for concurrent use; every worker
// owns its own.
type Generator interface {
	// Name returns the registry identifier (e.g. "mt19937")
	Name() string

	// Description returns a human-readable summary for CLI listings
	Description() string

	// Seed fully resets the instance to the state derived from seed
	Seed(seed uint32)

	// Next advances the generator and returns the next output
	Next() uint32
}

// StateRecoverer is implemented by generators whose output transform can be
// algebraically inverted. Feeding StateLen consecutive outputs rebuilds the
// internal state exactly; after RecoverState succeeds, Next continues with
// the output immediately following the supplied window.
type StateRecoverer interface {
	Generator

	// StateLen returns the exact number of consecutive outputs required
	StateLen() int

	// RecoverState rebuilds the internal state from a window of outputs
	RecoverState(window []uint32) error
}

// DefaultVariant is the generator assumed when the caller does not name one.
const DefaultVariant = "mt19937"

// The registry is a closed ordered table. Order is the listing order;
// the default variant comes first.
var variants = []struct {
	name        string
	constructor func() Generator
}{
	{"mt19937", func() Generator { return NewMT19937() }},
	{"glibc-rand", func() Generator { return NewGlibcRand() }},
	{"php-mt_rand", func() Generator { return NewPHPMtRand() }},
	{"ruby-rand", func() Generator { return NewRubyRand() }},
	{"java-util-random", func() Generator { return NewJavaRandom() }},
	{"msvc-rand", func() Generator { return NewMsvcRand() }},
	{"xorshift128", func() Generator { return NewXorshift128() }},
}

// Names returns the registered variant names in stable listing order.
func Names() []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.name
	}
	return names
}

// IsSupported reports whether name is a registered variant.
func IsSupported(name string) bool {
	for _, v := range variants {
		if v.name == name {
			return true
		}
	}
	return false
}

// New constructs a fresh, unseeded instance of the named variant.
func New(name string) (Generator, error) {
	for _, v := range variants {
		if v.name == name {
			return v.constructor(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// SupportsRecovery reports whether the named variant can have its internal
// state rebuilt from observed outputs alone.
func SupportsRecovery(name string) bool {
	g, err := New(name)
	if err != nil {
		return false
	}
	_, ok := g.(StateRecoverer)
	return ok
}

// Generate seeds a fresh instance of the named variant and returns its first
// depth outputs.
func Generate(name string, seed uint32, depth int) ([]uint32, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	g, err := New(name)
	if err != nil {
		return nil, err
	}
	g.Seed(seed)
	out := make([]uint32, depth)
	for i := range out {
		out[i] = g.Next()
	}
	return out, nil
}
