/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: variants.go
Description: list-variants command for the Akaylee Cracker. Prints the
registered generator algorithms, their descriptions, and whether each
supports direct state recovery.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-cracker/pkg/prng"
	"github.com/spf13/cobra"
)

// ListVariants lists all supported generator variants and their capabilities
func ListVariants(cmd *cobra.Command, args []string) {
	fmt.Println("🎲 Akaylee Cracker - Supported Generator Variants")
	fmt.Println("=================================================")
	fmt.Println()

	for i, name := range prng.Names() {
		g, err := prng.New(name)
		if err != nil {
			continue
		}

		marker := ""
		if name == prng.DefaultVariant {
			marker = " (default)"
		}
		fmt.Printf("%d. %s%s\n", i+1, name, marker)
		fmt.Printf("   Description: %s\n", g.Description())
		if r, ok := g.(prng.StateRecoverer); ok {
			fmt.Printf("   State recovery: yes, from %d consecutive outputs\n", r.StateLen())
		} else {
			fmt.Printf("   State recovery: no (output discards state bits), brute force only\n")
		}
		fmt.Println()
	}

	fmt.Println("✨ Use --variant/-r to select one for recovery or generation")
}
