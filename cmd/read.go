package cmd

import (
	"fmt"

	"github.com/nmarsh/recordstore"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(readCmd)
}

var readCmd = &cobra.Command{
	Use:   "read <path> <key>",
	Short: "Read the payload stored under a key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := recordstore.Open(args[0], recordstore.ModeReadOnly, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		payload, err := store.Read(args[1])
		if err != nil {
			return err
		}

		fmt.Println(string(payload))
		return nil
	},
}
