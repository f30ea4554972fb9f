package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole mapping as JSON or YAML",
	Long: `Export fully parses the file and prints its key to value mapping in a
structured format. Multi-line values keep their embedded newlines.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(false)
		if err != nil {
			return err
		}

		m, err := svc.ImportToMap(context.Background())
		if err != nil {
			return cliError(flagFile, err)
		}

		switch exportFormat {
		case "json":
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(m)
		case "yaml":
			data, err := yaml.Marshal(m)
			if err != nil {
				return fmt.Errorf("marshal yaml: %w", err)
			}
			_, err = os.Stdout.Write(data)
			return err
		default:
			return fmt.Errorf("unknown format %q (valid: json, yaml)", exportFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format (json or yaml)")
}
