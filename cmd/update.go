package cmd

import (
	"fmt"

	"github.com/nmarsh/recordstore"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <path> <key> <value>",
	Short: "Replace the payload stored under a key",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := recordstore.Open(args[0], recordstore.ModeReadWrite, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Update(args[1], []byte(args[2])); err != nil {
			return err
		}

		fmt.Printf("updated %q (%d bytes)\n", args[1], len(args[2]))
		return nil
	},
}
