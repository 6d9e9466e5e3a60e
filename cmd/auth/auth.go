package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hivegrid/hivectl/internal/api"
)

func NewAuthCommands(provider *api.Provider) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication sessions",
	}

	authCmd.AddCommand(newLoginCmd(provider))
	authCmd.AddCommand(newLogoutCmd(provider))
	authCmd.AddCommand(newSessionsCmd(provider))

	return authCmd
}

func newLoginCmd(provider *api.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "login [server] [username]",
		Short: "Create an authentication session",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := provider.CreateSession(cmd.Context(), args...)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			fmt.Printf("Signed in as %s\n", session.Account)
			return nil
		},
	}
}

func newLogoutCmd(provider *api.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "logout <session-id>",
		Short: "Remove an authentication session",
		Long:  `Removes a session by id (server/username) and invalidates the remote web session when it was the server's last one.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := provider.RemoveSession(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("logout failed: %w", err)
			}
			fmt.Printf("Signed out %s\n", args[0])
			return nil
		},
	}
}

func newSessionsCmd(provider *api.Provider) *cobra.Command {
	var serverFilter string
	var userFilter string

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List authentication sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := provider.GetSessions(cmd.Context(), serverFilter, userFilter)
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			if len(sessions) == 0 {
				fmt.Println("No active sessions.")
				return nil
			}
			for _, session := range sessions {
				fmt.Printf("%s (%s)\n", session.ID, session.Account)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&serverFilter, "server", "", "only sessions for this server")
	cmd.Flags().StringVar(&userFilter, "user", "", "only sessions for this user")
	return cmd
}
