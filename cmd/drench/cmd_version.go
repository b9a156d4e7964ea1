package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridable at link time.
var Version = "0.3.0"

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("drench", Version)
	},
}

func init() {
	mainCommand.AddCommand(versionCommand)
}
