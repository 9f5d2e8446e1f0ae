package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"task-assistant/config"
	"task-assistant/pkg/log"
)

const refLayout = "2006-01-02"

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "task-assistant",
		Short:         "Talk to your task list in plain language",
		Long:          `task-assistant interprets natural-language task commands against the configured task store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default: ./config/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	cmd.AddCommand(newChatCmd(opts), newClassifyCmd(opts), newParseDateCmd(opts), newGCalAuthCmd(opts))
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.Load()
}

func (o *rootOptions) logger() log.Logger {
	if !o.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console"})
}

// parseRef reads the --ref flag; empty means now.
func parseRef(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Now().In(loc), nil
	}
	t, err := time.ParseInLocation(refLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --ref %q, want YYYY-MM-DD", value)
	}
	return t, nil
}
