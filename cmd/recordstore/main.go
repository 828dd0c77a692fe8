// Command recordstore is the operational CLI entrypoint; see package cmd.
package main

import "github.com/nmarsh/recordstore/cmd"

func main() {
	cmd.Execute()
}
