package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var getStrict bool

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value stored under a key",
	Long: `Get looks up a key and prints its value. Multi-line values are printed
with their embedded newlines. With --strict, a key whose value is the
empty string is reported as an error instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		svc, err := newService(false)
		if err != nil {
			return err
		}

		ctx := context.Background()
		var val string
		if getStrict {
			val, err = svc.GetRequiredValue(ctx, key)
		} else {
			val, err = svc.GetValue(ctx, key)
		}
		if err != nil {
			return cliError(flagFile, err)
		}

		fmt.Println(val)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getStrict, "strict", false, "Fail if the value is empty")
}
