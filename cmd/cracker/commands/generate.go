/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Generate command implementation for the Akaylee Cracker. Emits
sample output streams from a known seed for fixture building, or infers the
state behind an observations file and emits the true continuation.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-cracker/pkg/core"
	"github.com/kleascm/akaylee-cracker/pkg/interfaces"
	"github.com/kleascm/akaylee-cracker/pkg/observed"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunGenerate executes the sample generation process
func RunGenerate(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	config := interfaces.NewDefaultConfig()
	config.Variant = viper.GetString("generate.variant")
	config.LogLevel = viper.GetString("log_level")
	config.LogFormat = viper.GetString("log_format")

	engine := core.NewEngine()
	engine.SetLogger(SessionLogger())
	if err := engine.Initialize(config); err != nil {
		return err
	}

	depth := viper.GetInt("generate.depth")

	// With an observations file, continue the unknown generator instead of
	// seeding a fresh one
	if inputPath := viper.GetString("generate.input"); inputPath != "" {
		observations, err := observed.ReadFile(inputPath, SessionLogger())
		if err != nil {
			return err
		}
		if len(observations) == 0 {
			return fmt.Errorf("%w: %s holds no parseable integers", interfaces.ErrNoObservations, inputPath)
		}
		if err := engine.InferState(observations); err != nil {
			return err
		}
		if depth == 0 {
			depth = 10
		}
		outputs, err := engine.GenerateFromState(depth)
		if err != nil {
			return err
		}
		for _, v := range outputs {
			fmt.Println(v)
		}
		return nil
	}

	seed := uint32(viper.GetUint64("generate.seed"))
	outputs, err := engine.GenerateFromSeed(seed, depth)
	if err != nil {
		return err
	}
	for _, v := range outputs {
		fmt.Println(v)
	}
	return nil
}
