// Package sessions holds the non-interactive session management commands.
package sessions

import (
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"docchat/internal/api"
	"docchat/internal/cli"
	"docchat/internal/configuration"
)

// NewCmd instantiates and returns the sessions command.
func NewCmd(config *configuration.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect and manage chat sessions",
	}
	cmd.AddCommand(newListCmd(config))
	cmd.AddCommand(newDeleteCmd(config))
	return cmd
}

func newListCmd(config *configuration.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all chat sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(config)
			sessions, err := client.ListSessions(cmd.Context())
			if err != nil {
				return err
			}

			cli.Title("Chat Sessions (%d)", len(sessions))
			for _, session := range sessions {
				cli.Session("%s  %s\n", session.ID, session.Title)
				if preview := session.LastUserMessage(); preview != "" {
					cli.Muted("    %s\n", preview)
				}
				cli.Separator()
			}
			return nil
		},
	}
}

func newDeleteCmd(config *configuration.Config) *cobra.Command {
	var opts struct {
		Force bool
	}
	cmd := &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a chat session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := args[0]

			if !opts.Force {
				confirmed := false
				prompt := &survey.Confirm{
					Message: "Are you sure you want to delete this chat?",
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			client := newClient(config)
			if err := client.DeleteSession(cmd.Context(), sessionID); err != nil {
				return err
			}
			cli.Success("Deleted session %s\n", sessionID)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}

func newClient(config *configuration.Config) *api.Client {
	return api.NewClient(config.ServerURL, time.Duration(config.RequestTimeout)*time.Second)
}
