package cmd

import (
	"fmt"

	"github.com/nmarsh/recordstore"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sizeCmd)
}

var sizeCmd = &cobra.Command{
	Use:   "size <path>",
	Short: "Print the number of live records in a store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := recordstore.Open(args[0], recordstore.ModeReadOnly, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		fmt.Println(store.Size())
		return nil
	},
}
