// Author: KleaSCM
// Email: KleaSCM@gmail.com
// File: victim.go
// Description: Demo victim program. Seeds an MT19937 with the current Unix time and
// prints "session tokens", producing exactly the kind of capture file the recover
// command cracks with --time-window.

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kleascm/akaylee-cracker/pkg/prng"
)

func main() {
	count := 20
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Println("Usage: victim [count]")
			os.Exit(1)
		}
		count = n
	}

	// The classic mistake: a time seed
	g, err := prng.New(prng.DefaultVariant)
	if err != nil {
		fmt.Println("Failed to build generator:", err)
		os.Exit(1)
	}
	g.Seed(uint32(time.Now().Unix()))

	for i := 0; i < count; i++ {
		fmt.Println(g.Next())
	}
}
