package main

import (
	"fmt"
	"os"

	"github.com/lukaszgryglicki/partgen/internal/partgen"
)

func main() {
	partgen.Debug = os.Getenv("DEBUG") != ""

	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := partgen.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
