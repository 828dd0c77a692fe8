package cmd

import (
	"fmt"

	"github.com/nmarsh/recordstore"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys <path>",
	Short: "List the live keys in a store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := recordstore.Open(args[0], recordstore.ModeReadOnly, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		for _, key := range store.Keys() {
			fmt.Println(key)
		}
		return nil
	},
}
