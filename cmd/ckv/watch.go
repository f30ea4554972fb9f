package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the file and re-validate it on every change",
	Long: `Watch observes the ckv file and fully re-parses it whenever it changes,
printing either the number of keys or the syntax error with its line
number. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(false)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		validate := func() {
			m, err := svc.ImportToMap(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", cliError(flagFile, err))
				return
			}
			fmt.Printf("%s: ok (%d keys)\n", flagFile, len(m))
		}

		validate()

		events, err := svc.Watch(ctx)
		if err != nil {
			return err
		}

		for range events {
			validate()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
