package root

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdAuth "github.com/hivegrid/hivectl/cmd/auth"
	cmdServer "github.com/hivegrid/hivectl/cmd/server"
	cmdViewer "github.com/hivegrid/hivectl/cmd/viewer"
)

func NewRootCmd(deps *Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hivectl",
		Short: "HiveGrid Connector",
		Long:  `A connector for managing HiveGrid servers, credentials, and sessions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("No subcommand provided. Showing help...")
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(cmdServer.NewServerCommands(deps.Provider, deps.Config, deps.Prompt))
	rootCmd.AddCommand(cmdAuth.NewAuthCommands(deps.Provider))
	rootCmd.AddCommand(cmdViewer.NewViewerCommands(deps.Provider, deps.Tokens, deps.Invalidator))

	return rootCmd
}
