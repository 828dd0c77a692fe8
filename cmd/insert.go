package cmd

import (
	"fmt"

	"github.com/nmarsh/recordstore"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(insertCmd)
}

var insertCmd = &cobra.Command{
	Use:   "insert <path> <key> <value>",
	Short: "Insert a key/value pair into a store",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := recordstore.Open(args[0], recordstore.ModeReadWrite, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Insert(args[1], []byte(args[2])); err != nil {
			return err
		}

		fmt.Printf("inserted %q (%d bytes)\n", args[1], len(args[2]))
		return nil
	},
}
