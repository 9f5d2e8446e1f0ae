package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-assistant/internal/assistant"
	"task-assistant/internal/conversation"
)

func newChatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Long:  `Reads one message per line from stdin until EOF or "exit".`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			core, err := assistant.Build(ctx, cfg, opts.logger())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "💬 Type a message, \"exit\" to quit.")

			var cc conversation.Context
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					continue
				case "exit", "quit":
					return nil
				}

				turn := core.UseCase.HandleTurn(ctx, conversation.TurnInput{Text: line, Context: cc})
				cc = turn.Context
				fmt.Fprintln(out, turn.Response)
			}
		},
	}
}
