package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose     bool
	flagFile    string
	strictKeys  bool
	blankCloses bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ckv",
	Short: "Read and surgically edit ckv configuration files",
	Long: `ckv parses, queries and edits line-oriented key-value configuration
files with tab-indented multi-line values. Edits rewrite the whole file
atomically but leave every untouched line byte for byte intact, and any
syntax error is reported with its 1-based line number.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Flags win over config file and environment.
		if !cmd.Flags().Changed("file") {
			flagFile = cfg.GetString(cfgKeyFile)
		}
		if !cmd.Flags().Changed("strict-keys") {
			strictKeys = cfg.GetBool(cfgKeyStrict)
		}
		if !cmd.Flags().Changed("blank-closes") {
			blankCloses = cfg.GetBool(cfgKeyBlankCloses)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", defaultFile, "Path to the ckv file")
	rootCmd.PersistentFlags().BoolVar(&strictKeys, "strict-keys", false, "Reject key lines that carry a value (key-existence mode)")
	rootCmd.PersistentFlags().BoolVar(&blankCloses, "blank-closes", false, "A blank line closes the open multi-line value")
}
