package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/MihirLuthra/ckv-file-parser/pkg/ckv"
)

var lintKeysOnly bool

var lintCmd = &cobra.Command{
	Use:   "lint <glob>...",
	Short: "Validate every ckv file matching the given globs",
	Long: `Lint parses each file matching the glob patterns (doublestar syntax,
e.g. 'configs/**/*.ckv') and reports syntax errors with their line
numbers. With --keys-only, key lines carrying a value after '=' are
rejected too, validating key-existence files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := parseOptions(lintKeysOnly)

		checked, invalid := 0, 0
		for _, pattern := range args {
			matches, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return fmt.Errorf("bad pattern %q: %w", pattern, err)
			}

			for _, path := range matches {
				checked++
				data, err := os.ReadFile(path)
				if err != nil {
					invalid++
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					continue
				}

				doc, err := ckv.ParseString(string(data), opts...)
				if err != nil {
					invalid++
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					continue
				}

				if verbose {
					fmt.Printf("%s: ok (%d keys)\n", path, doc.Len())
				}
			}
		}

		if checked == 0 {
			return fmt.Errorf("no files matched")
		}
		if invalid > 0 {
			return fmt.Errorf("%d of %d files invalid", invalid, checked)
		}

		fmt.Printf("%d files ok\n", checked)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().BoolVar(&lintKeysOnly, "keys-only", false, "Reject key lines that carry a value")
}
