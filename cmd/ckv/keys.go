package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var keysJSON bool

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every key in document order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(false)
		if err != nil {
			return err
		}

		entries, err := svc.ListEntries(context.Background())
		if err != nil {
			return cliError(flagFile, err)
		}

		if keysJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(entries)
		}

		for _, e := range entries {
			fmt.Println(e.Key)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().BoolVar(&keysJSON, "json", false, "Output entries as JSON")
}
