/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Report command for the Akaylee Cracker. Re-renders a saved JSON
session report in another format, typically HTML for sharing.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-cracker/pkg/reporting"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunReport re-renders a saved session report
func RunReport(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	sessionPath := viper.GetString("report.session")
	report, err := reporting.Load(sessionPath)
	if err != nil {
		return err
	}

	writer := reporting.NewWriter(viper.GetString("report_dir"), SessionLogger())
	path, err := writer.Write(report, viper.GetString("report.format"))
	if err != nil {
		return err
	}

	fmt.Printf("📊 Report for session %s rendered to %s\n", report.SessionID, path)
	return nil
}

// PrintVersion prints the version line
func PrintVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("akaylee-cracker v%s\n", Version)
}
