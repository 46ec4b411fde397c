/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reader.go
Description: Observed-output ingestion for the Akaylee Cracker. Reads
newline-separated unsigned integers in any base-prefix notation and collects
them in emission order for the recovery engine.
*/

package observed

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Read collects observations from r: one unsigned 32-bit integer per line,
// decimal or prefix notation (0x hex, 0o/0 octal, 0b binary). Blank and
// unparseable lines are skipped with a debug log, matching how capture files
// tend to carry stray prompts and separators. Order is preserved; it is the
// emission order of the unknown generator.
func Read(r io.Reader, logger *logrus.Logger) ([]uint32, error) {
	if logger == nil {
		logger = logrus.New()
	}

	var outputs []uint32
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		value, err := strconv.ParseUint(text, 0, 32)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"line": line,
				"text": text,
			}).Debug("Skipping unparseable observation line")
			continue
		}
		outputs = append(outputs, uint32(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read observations: %w", err)
	}
	return outputs, nil
}

// ReadFile collects observations from a file on disk.
func ReadFile(path string, logger *logrus.Logger) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open observations file: %w", err)
	}
	defer f.Close()
	return Read(f, logger)
}
