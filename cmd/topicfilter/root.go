package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/topicfilter"
	"github.com/hupe1980/topicfilter/core"
	"github.com/hupe1980/topicfilter/memstore"
)

var rootCmd = &cobra.Command{
	Use:   "topicfilter",
	Short: "Resolve topic filter queries against a fixture",
	Long: `Topicfilter turns a free-form filter query such as

  category:bugs -tag:wip status:open order:likes-asc quick fix

into a SQL predicate over the topics table. Categories, tags and tag groups
are resolved against a YAML fixture file.

Configuration is read from flags, or from TOPICFILTER_* environment
variables (TOPICFILTER_FIXTURE, TOPICFILTER_USER, ...).`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("fixture", "", "Path to the YAML fixture with categories, tags and tag groups")
	pf.Int64("user", 0, "Viewer user id; 0 means anonymous")
	pf.Bool("see-deleted", false, "Viewer may see deleted topics")
	pf.Int("min-term-length", topicfilter.DefaultMinTermLength, "Minimum residual free-text length")
	pf.Bool("tagging", true, "Enable tag filters")
	pf.String("log-level", "info", "Log level: debug|info|warn|error")

	viper.SetEnvPrefix("topicfilter")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlags(pf))

	rootCmd.AddCommand(resolveCmd, catalogCmd)
}

func logLevel() slog.Level {
	switch viper.GetString("log-level") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func viewer() memstore.Viewer {
	return memstore.Viewer{
		ID:         core.UserID(viper.GetInt64("user")),
		SeeDeleted: viper.GetBool("see-deleted"),
	}
}

func loadStore() (*memstore.Store, error) {
	path := viper.GetString("fixture")
	if path == "" {
		return memstore.New(memstore.Fixture{}), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return memstore.Load(f)
}
