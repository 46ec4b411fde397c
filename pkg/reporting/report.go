/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Session report writer for the Akaylee Cracker. Serializes the
outcome of a recovery session (configuration, range, results, recovered
state) to JSON, YAML, or a self-contained HTML page.
*/

package reporting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/kleascm/akaylee-cracker/pkg/interfaces"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// SessionReport is the durable record of one recovery session.
type SessionReport struct {
	SessionID      string                  `json:"session_id" yaml:"session_id"`
	GeneratedAt    time.Time               `json:"generated_at" yaml:"generated_at"`
	Version        string                  `json:"version" yaml:"version"`
	Variant        string                  `json:"variant" yaml:"variant"`
	Mode           string                  `json:"mode" yaml:"mode"` // bruteforce or inference
	Depth          int                     `json:"depth" yaml:"depth"`
	Workers        int                     `json:"workers" yaml:"workers"`
	MinConfidence  float64                 `json:"min_confidence" yaml:"min_confidence"`
	Range          interfaces.SearchRange  `json:"range" yaml:"range"`
	Observations   int                     `json:"observations" yaml:"observations"`
	Evaluated      uint64                  `json:"evaluated" yaml:"evaluated"`
	Elapsed        time.Duration           `json:"elapsed" yaml:"elapsed"`
	Rate           float64                 `json:"rate" yaml:"rate"`
	Results        []interfaces.SeedResult `json:"results" yaml:"results"`
	StateRecovered bool                    `json:"state_recovered" yaml:"state_recovered"`
	Cancelled      bool                    `json:"cancelled" yaml:"cancelled"`
}

// Writer persists session reports to an output directory.
type Writer struct {
	outputDir string
	logger    *logrus.Logger
}

// NewWriter creates a report writer rooted at outputDir.
func NewWriter(outputDir string, logger *logrus.Logger) *Writer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Writer{outputDir: outputDir, logger: logger}
}

// Write serializes the report in the requested format ("json", "yaml" or
// "html") and returns the path of the file written. File names carry the
// session ID so repeated sessions never clobber each other.
func (w *Writer) Write(report *SessionReport, format string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	if report.GeneratedAt.IsZero() {
		report.GeneratedAt = time.Now()
	}

	var (
		data []byte
		ext  string
		err  error
	)
	switch format {
	case "json", "":
		data, err = json.MarshalIndent(report, "", "  ")
		ext = "json"
	case "yaml":
		data, err = yaml.Marshal(report)
		ext = "yaml"
	case "html":
		data, err = renderHTML(report)
		ext = "html"
	default:
		return "", fmt.Errorf("unsupported report format: %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	path := filepath.Join(w.outputDir, fmt.Sprintf("session_%s.%s", report.SessionID, ext))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	w.logger.WithFields(logrus.Fields{
		"session": report.SessionID,
		"format":  format,
		"path":    path,
	}).Info("Session report written")
	return path, nil
}

// Load reads a previously written JSON session report, for re-rendering.
func Load(path string) (*SessionReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var report SessionReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	return &report, nil
}

// renderHTML renders the self-contained HTML page.
func renderHTML(report *SessionReport) ([]byte, error) {
	tmpl, err := template.New("session").Funcs(template.FuncMap{
		"hex": func(v uint32) string { return fmt.Sprintf("0x%08x", v) },
		"pct": func(v float64) string { return fmt.Sprintf("%.2f%%", v) },
	}).Parse(sessionTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
