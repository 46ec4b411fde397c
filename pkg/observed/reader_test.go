/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reader_test.go
Description: Tests for observed-output ingestion. Covers decimal and prefixed
notations, stray-line tolerance, ordering, and file loading.
*/

package observed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMixedNotation(t *testing.T) {
	input := strings.Join([]string{
		"3499211612",
		"0xD091BB5C",
		"0b1010",
		"0o17",
		"  42  ",
	}, "\n")

	outputs, err := Read(strings.NewReader(input), nil)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3499211612, 0xD091BB5C, 10, 15, 42}, outputs)
}

func TestReadSkipsStrayLines(t *testing.T) {
	input := strings.Join([]string{
		"# capture from target, 2026-08-12",
		"100",
		"",
		"not-a-number",
		"200",
		"-5",
		"4294967296", // one past the 32-bit ceiling
		"300",
	}, "\n")

	outputs, err := Read(strings.NewReader(input), nil)
	require.NoError(t, err)
	assert.Equal(t, []uint32{100, 200, 300}, outputs, "stray lines drop, order survives")
}

func TestReadEmptyInput(t *testing.T) {
	outputs, err := Read(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestReadBoundaryValues(t *testing.T) {
	outputs, err := Read(strings.NewReader("0\n4294967295\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 4294967295}, outputs)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.txt")
	require.NoError(t, os.WriteFile(path, []byte("11\n22\n33\n"), 0644))

	outputs, err := ReadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint32{11, 22, 33}, outputs)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"), nil)
	assert.Error(t, err)
}
