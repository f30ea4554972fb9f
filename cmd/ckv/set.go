package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Create or replace a key's value",
	Long: `Set replaces the value stored under a key in place, or appends a new
entry at the end of the file. The file is rewritten atomically; every
other entry keeps its original formatting byte for byte. A value
containing newlines is stored as a multi-line entry with tab-indented
continuation lines.

The file is created if it does not exist yet.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		svc, err := newService(true)
		if err != nil {
			return err
		}

		if err := svc.SetValue(context.Background(), key, value); err != nil {
			return cliError(flagFile, err)
		}

		fmt.Printf("%s: set %q\n", flagFile, key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
