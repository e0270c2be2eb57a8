// Package main provides the entry point for the talent-match HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_server",
	Short: "Campus recruitment candidate matching service",
	Long:  "talent-match ranks student candidates against job skill requirements using a skill taxonomy, semantic similarity, and retention signals, exposed over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
