// Package main is the entry point for the parcel CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runger/parcel/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
