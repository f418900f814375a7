package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.design/x/clipboard"

	"docchat/internal/api"
	"docchat/internal/configuration"
	"docchat/internal/debug"
)

// NewCmd instantiates and returns the chat command.
func NewCmd(config *configuration.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := api.NewClient(config.ServerURL, time.Duration(config.RequestTimeout)*time.Second)

			// Clipboard support is best effort; headless terminals go without.
			clipboardReady := clipboard.Init() == nil
			if !clipboardReady {
				debug.GetLogger().Warn("clipboard unavailable")
			}

			model, err := New(ctx, config, client, clipboardReady)
			if err != nil {
				return err
			}
			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}
