/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils_test.go
Description: Tests for the shared command utilities. Verifies the session
logging system is built from the resolved log flags with a real log file.
*/

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setLoggingKeys(t *testing.T, level, format, dir string) {
	t.Helper()
	viper.Set("log_level", level)
	viper.Set("log_format", format)
	viper.Set("log_dir", dir)
	t.Cleanup(viper.Reset)
}

func TestSetupLoggingBuildsSessionLogFile(t *testing.T) {
	dir := t.TempDir()
	setLoggingKeys(t, "debug", "custom", dir)

	require.NoError(t, SetupLogging())
	t.Cleanup(func() { CloseLogging() })

	// the session logger is the real one, not the stdlib fallback
	logger := SessionLogger()
	require.NotNil(t, logger)
	assert.NotSame(t, logrus.StandardLogger(), logger)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	// a timestamped session log exists under the configured directory
	files, err := filepath.Glob(filepath.Join(dir, "akaylee-cracker_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	logger.WithField("seed", 12345).Info("Seed recovered")
	require.NoError(t, CloseLogging())

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Seed recovered")
}

func TestSetupLoggingRejectsBadFormat(t *testing.T) {
	setLoggingKeys(t, "info", "xml", t.TempDir())

	err := SetupLogging()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log format")
	assert.Same(t, logrus.StandardLogger(), SessionLogger())
}

func TestSetupLoggingRejectsBadLevel(t *testing.T) {
	setLoggingKeys(t, "verbose", "text", t.TempDir())

	err := SetupLogging()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestCloseLoggingWithoutSetup(t *testing.T) {
	sessionLogging = nil
	assert.NoError(t, CloseLogging())
}
