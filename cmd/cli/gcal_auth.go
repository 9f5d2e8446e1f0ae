package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"task-assistant/pkg/gcalendar"
)

func newGCalAuthCmd(opts *rootOptions) *cobra.Command {
	var credentialsPath string

	cmd := &cobra.Command{
		Use:   "gcal-auth",
		Short: "Authorize Google Calendar access and save token.json",
		Long: `Runs the one-time OAuth flow for installed-app credentials. The token is
written next to the credentials file, where the server looks for it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if credentialsPath == "" {
				cfg, err := opts.loadConfig()
				if err != nil {
					return err
				}
				credentialsPath = cfg.GoogleCalendar.CredentialsPath
			}
			if credentialsPath == "" {
				return fmt.Errorf("no credentials file: set google_calendar.credentials_path or --credentials")
			}

			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials file %q: %w", credentialsPath, err)
			}
			oauthCfg, err := gcalendar.InstalledAppConfig(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code here: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			tok, err := oauthCfg.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}

			tokenPath := gcalendar.TokenPath(credentialsPath)
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n✓ Token saved to %s\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&credentialsPath, "credentials", "", "OAuth desktop-app credentials file (default: google_calendar.credentials_path)")
	return cmd
}
