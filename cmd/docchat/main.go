package main

import (
	"github.com/spf13/cobra"

	"docchat/cli/sessions"
	"docchat/cli/tui"
	"docchat/cli/upload"
	"docchat/internal/configuration"
)

const configFilepath = "~/.config/docchat/config.json"

var rootCmd = &cobra.Command{
	Use:     "docchat",
	Short:   "A terminal client for document-grounded chat",
	Version: "1.0",
}

func main() {
	config, err := configuration.Parse(configFilepath)
	if err != nil {
		panic(err)
	}

	rootCmd.AddCommand(tui.NewCmd(config))
	rootCmd.AddCommand(sessions.NewCmd(config))
	rootCmd.AddCommand(upload.NewCmd(config))
	rootCmd.Execute()
}
