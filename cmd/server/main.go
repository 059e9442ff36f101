// Package main is the entry point for the rpg-sheet service
package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-sheet",
	Short: "D&D 5e character sheet rules service",
	Long: `rpg-sheet validates D&D 5e character sheets, computes their derived values
and serves them over gRPC.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !stderrors.Is(err, errInvalidDocument) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(
		&envFiles, "env-file", []string{".env"}, "env files to load before reading the environment")
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(validateCmd)
}
