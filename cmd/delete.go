package cmd

import (
	"fmt"

	"github.com/nmarsh/recordstore"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <path> <key>",
	Short: "Delete a key from a store",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := recordstore.Open(args[0], recordstore.ModeReadWrite, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(args[1]); err != nil {
			return err
		}

		fmt.Printf("deleted %q\n", args[1])
		return nil
	},
}
