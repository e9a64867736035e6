// Package main provides the twlite CLI: a stylesheet generator for the small
// Tailwind-style utility vocabulary used by the site's markup.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
