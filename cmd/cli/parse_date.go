package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-assistant/pkg/datemath"
)

func newParseDateCmd(opts *rootOptions) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "parse-date <text>",
		Short: "Find the date expression in text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			dates, err := datemath.NewParser(cfg.Conversation.Timezone)
			if err != nil {
				return err
			}
			now, err := parseRef(ref, dates.Location())
			if err != nil {
				return err
			}

			due, ok := dates.Parse(strings.Join(args, " "), now)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no date found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), due.Format(refLayout))
			return nil
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "Reference date YYYY-MM-DD (default: today)")
	return cmd
}
