/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces_test.go
Description: Tests for config validation and search range arithmetic.
*/

package interfaces

import (
	"errors"
	"testing"

	"github.com/kleascm/akaylee-cracker/pkg/prng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := NewDefaultConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, "mt19937", config.Variant)
	assert.Equal(t, 1000, config.Depth)
	assert.GreaterOrEqual(t, config.Workers, 1)
	assert.Equal(t, 100.0, config.MinConfidence)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CrackerConfig)
		sentinel error
	}{
		{"zero depth", func(c *CrackerConfig) { c.Depth = 0 }, ErrInvalidDepth},
		{"negative depth", func(c *CrackerConfig) { c.Depth = -5 }, ErrInvalidDepth},
		{"zero workers", func(c *CrackerConfig) { c.Workers = 0 }, ErrInvalidWorkers},
		{"zero confidence", func(c *CrackerConfig) { c.MinConfidence = 0 }, ErrInvalidConfidence},
		{"negative confidence", func(c *CrackerConfig) { c.MinConfidence = -1 }, ErrInvalidConfidence},
		{"confidence above 100", func(c *CrackerConfig) { c.MinConfidence = 100.1 }, ErrInvalidConfidence},
		{"unknown variant", func(c *CrackerConfig) { c.Variant = "rc4" }, prng.ErrUnknownVariant},
		{"empty variant", func(c *CrackerConfig) { c.Variant = "" }, prng.ErrUnknownVariant},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config := NewDefaultConfig()
			tc.mutate(config)
			err := config.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.sentinel))
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	config := NewDefaultConfig()
	config.Depth = 1
	config.Workers = 1
	config.MinConfidence = 100.0
	assert.NoError(t, config.Validate())

	config.MinConfidence = 0.001
	assert.NoError(t, config.Validate())
}

func TestSearchRangeWidth(t *testing.T) {
	assert.Equal(t, uint64(1000), SearchRange{Lower: 12000, Upper: 13000}.Width())
	assert.Equal(t, uint64(0), SearchRange{Lower: 5, Upper: 5}.Width())
	assert.Equal(t, uint64(0), SearchRange{Lower: 10, Upper: 5}.Width())
	assert.Equal(t, uint64(0xffffffff), FullRange().Width())
	assert.Equal(t, uint64(1), SearchRange{Lower: 0xfffffffe, Upper: 0xffffffff}.Width())
}

func TestSearchRangeString(t *testing.T) {
	assert.Equal(t, "[12000, 13000)", SearchRange{Lower: 12000, Upper: 13000}.String())
}
