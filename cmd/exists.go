package cmd

import (
	"fmt"

	"github.com/nmarsh/recordstore"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(existsCmd)
}

var existsCmd = &cobra.Command{
	Use:   "exists <path> <key>",
	Short: "Check whether a key is present",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := recordstore.Open(args[0], recordstore.ModeReadOnly, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		fmt.Println(store.Exists(args[1]))
		return nil
	},
}
