package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/topicfilter"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the filter vocabulary available to the viewer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := topicfilter.Catalog(viewer(), viper.GetBool("tagging"))

		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}
		switch format {
		case "json":
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		case "yaml":
			out, err := yaml.Marshal(entries)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
		default:
			return fmt.Errorf("unknown format %q", format)
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("format", "yaml", "Output format: yaml|json")
}
