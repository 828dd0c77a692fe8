// Package cmd implements a small operational CLI around the
// recordstore library: one subcommand per Store operation, for
// inspecting or exercising a store file from a shell. It is scaffolding
// around the library, not a replacement for it — spec.md names a
// polished command-line demo driver as an external collaborator out of
// scope for this repo.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recordstore",
	Short: "recordstore is an embedded key-value file store",
	Long:  `recordstore inspects and exercises a single-file record store from the shell.`,
}

// Execute is the primary entrypoint used by cmd/recordstore/main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
