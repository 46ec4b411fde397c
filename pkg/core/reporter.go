/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporter.go
Description: Reporter implementations for Akaylee Cracker telemetry and live
reporting. Streams matches as workers find them and summarizes completed
searches.
*/

package core

import (
	"github.com/kleascm/akaylee-cracker/pkg/interfaces"
	"github.com/sirupsen/logrus"
)

// LoggerReporter logs search events using the standard logger.
type LoggerReporter struct {
	logger *logrus.Logger
}

// NewLoggerReporter creates a new LoggerReporter.
func NewLoggerReporter(logger *logrus.Logger) *LoggerReporter {
	return &LoggerReporter{logger: logger}
}

// OnSeedFound logs a matching seed the moment a worker records it.
func (r *LoggerReporter) OnSeedFound(result interfaces.SeedResult) {
	r.logger.WithFields(logrus.Fields{
		"seed":       result.Seed,
		"confidence": result.Confidence,
	}).Info("Seed recovered")
}

// OnSearchComplete logs the final tally.
func (r *LoggerReporter) OnSearchComplete(results []interfaces.SeedResult, evaluated uint64) {
	r.logger.WithFields(logrus.Fields{
		"matches":   len(results),
		"evaluated": evaluated,
	}).Info("Search complete")
}
