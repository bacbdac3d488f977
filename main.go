package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ppiankov/arbiterstg/internal/cli"
	"github.com/ppiankov/arbiterstg/internal/guardrail"
)

func main() {
	if err := cli.Execute(); err != nil {
		if errors.Is(err, guardrail.ErrRefused) {
			// Refused input is a distinct outcome, not a crash.
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
