package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/topicfilter"
	"github.com/hupe1980/topicfilter/core"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve QUERY...",
	Short: "Resolve a filter query and print the resulting SQL",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		resolver, err := topicfilter.New(viewer(), store, store,
			topicfilter.WithLogger(topicfilter.NewTextLogger(logLevel())),
			topicfilter.WithMinTermLength(viper.GetInt("min-term-length")),
			topicfilter.WithTagging(viper.GetBool("tagging")),
		)
		if err != nil {
			return err
		}

		result, err := resolver.Resolve(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		sql, sqlArgs := result.Scope.SQL()
		fmt.Fprintln(cmd.OutOrStdout(), sql)
		for i, a := range sqlArgs {
			fmt.Fprintf(cmd.OutOrStdout(), "  $%d = %v\n", i+1, a)
		}
		if len(result.NotificationLevels) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "notification levels: %s\n", levelList(result.NotificationLevels))
		}
		return nil
	},
}

func levelList(levels []core.NotificationLevel) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = fmt.Sprintf("%d", l)
	}
	return strings.Join(parts, ", ")
}
