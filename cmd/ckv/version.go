package main

import (
	"fmt"

	ckvfile "github.com/MihirLuthra/ckv-file-parser"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ckv",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ckv version %s\n", ckvfile.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
