package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <key>",
	Short: "Remove a key from the file",
	Long: `Remove drops a key's entry: exactly its key line and all of its
tab-indented continuation lines. Blank lines around the entry are
preserved. Fails if the key is absent; the file is not touched then.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		svc, err := newService(false)
		if err != nil {
			return err
		}

		if err := svc.RemoveKey(context.Background(), key); err != nil {
			return cliError(flagFile, err)
		}

		fmt.Printf("%s: removed %q\n", flagFile, key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
