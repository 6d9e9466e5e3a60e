package viewer

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/hivegrid/hivectl/internal/api"
	"github.com/hivegrid/hivectl/internal/config"
	"github.com/hivegrid/hivectl/internal/remote"
)

func NewViewerCommands(provider *api.Provider, tokens *remote.TokenCache, invalidator *remote.Invalidator) *cobra.Command {
	viewerCmd := &cobra.Command{
		Use:   "viewer",
		Short: "Open server content with a short-lived access token",
	}

	viewerCmd.AddCommand(newOpenCmd(provider, tokens, invalidator))

	return viewerCmd
}

func newOpenCmd(provider *api.Provider, tokens *remote.TokenCache, invalidator *remote.Invalidator) *cobra.Command {
	var browser bool

	cmd := &cobra.Command{
		Use:   "open <server> [path]",
		Short: "Print a tokenized URL for a server path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverName := args[0]
			homePath := "/"
			if len(args) > 1 {
				homePath = args[1]
			}

			spec, err := provider.GetServerSpec(serverName, config.ScopeEffective, false, false)
			if err != nil {
				return fmt.Errorf("failed to resolve server: %w", err)
			}
			if spec == nil {
				fmt.Println("Resolution did not complete.")
				return nil
			}

			client, err := remote.NewRestClient(spec)
			if err != nil {
				return err
			}
			invalidator.Register(serverName, client)

			target := remote.TargetViewer
			if browser {
				target = remote.TargetBrowser
			}

			token, err := tokens.Token(cmd.Context(), target, serverName, client, homePath)
			if err != nil {
				// No token: the URL still works, the server will ask for login.
				fmt.Printf("Warning: could not obtain an access token: %v\n", err)
			}

			opened := spec.WebServer.BaseURL() + homePath
			if token != "" {
				opened += "?token=" + url.QueryEscape(token)
			}
			fmt.Println(opened)
			return nil
		},
	}
	cmd.Flags().BoolVar(&browser, "browser", false, "mint a token for the external browser instead of the embedded viewer")
	return cmd
}
