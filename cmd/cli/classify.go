package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"task-assistant/internal/assistant"
	"task-assistant/internal/conversation"
	"task-assistant/pkg/datemath"
)

type classifyOutput struct {
	Intent conversation.Intent `json:"intent"`
	Source conversation.Source `json:"source"`
	Error  string              `json:"error,omitempty"`
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "classify <text>",
		Short: "Print the intent of an utterance as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
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

			classifier := assistant.NewClassifier(ctx, cfg, dates, opts.logger())
			res := classifier.Classify(ctx, strings.Join(args, " "), now, conversation.Context{})

			out := classifyOutput{Intent: res.Intent, Source: res.Source}
			if res.Err != nil {
				out.Error = res.Err.Error()
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "Reference date YYYY-MM-DD (default: today)")
	return cmd
}
