/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee Cracker commands. Provides
common configuration loading, session logging setup, and config assembly used
across all command implementations.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-cracker/pkg/interfaces"
	"github.com/kleascm/akaylee-cracker/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Version is the release line printed by --version and stamped into reports.
const Version = "1.0.0"

// sessionLogging is the logging system for the current command invocation.
// Built by SetupLogging, torn down by CloseLogging.
var sessionLogging *logging.Logger

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("AKAYLEE")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the session logging system from the resolved log
// flags: leveled output, the selected formatter, and a timestamped log file
// under the log directory with rotation and cleanup.
func SetupLogging() error {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  10,
		MaxSize:   100 * 1024 * 1024, // 100MB
		Timestamp: true,
		Colors:    true,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	sessionLogging = logger
	return nil
}

// SessionLogger returns the logrus logger behind the session logging system.
// Falls back to the standard logger when SetupLogging has not run.
func SessionLogger() *logrus.Logger {
	if sessionLogging == nil {
		return logrus.StandardLogger()
	}
	return sessionLogging.GetLogger()
}

// CloseLogging flushes and closes the session log file and prunes old logs.
func CloseLogging() error {
	if sessionLogging == nil {
		return nil
	}
	err := sessionLogging.Close()
	sessionLogging = nil
	return err
}

// createCrackerConfig assembles the engine configuration from the resolved
// viper keys of the recover command. Defaults for workers are applied by
// NewDefaultConfig; everything else comes from flags, env, or config file.
func createCrackerConfig() *interfaces.CrackerConfig {
	config := interfaces.NewDefaultConfig()

	config.Variant = viper.GetString("recover.variant")
	config.Depth = viper.GetInt("recover.depth")
	if threads := viper.GetInt("recover.threads"); threads > 0 {
		config.Workers = threads
	}
	config.MinConfidence = viper.GetFloat64("recover.min_confidence")
	config.LogLevel = viper.GetString("log_level")
	config.LogFormat = viper.GetString("log_format")
	config.LogDir = viper.GetString("log_dir")
	config.ReportDir = viper.GetString("report_dir")
	config.ReportFormat = viper.GetString("report_format")

	return config
}
