package cmd

import (
	"fmt"
	"strconv"

	"github.com/nmarsh/recordstore"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <path> <initial-capacity>",
	Short: "Create a new store file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		capacity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid initial capacity %q: %w", args[1], err)
		}

		store, err := recordstore.Create(args[0], capacity, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		fmt.Printf("created %s with capacity %d\n", args[0], capacity)
		return nil
	},
}
