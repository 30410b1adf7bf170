// Package main provides the entry point for the Venture Match HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "venture_match",
	Short: "Venture Match HTTP API Server",
	Long:  "Venture Match connects founders with candidates and investors through skill-aware candidate search, job postings, deal pipelines, and meeting scheduling via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
