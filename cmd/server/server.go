package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hivegrid/hivectl/internal/api"
	"github.com/hivegrid/hivectl/internal/config"
	"github.com/hivegrid/hivectl/models"
	promptUtils "github.com/hivegrid/hivectl/utils/prompt"
)

func NewServerCommands(provider *api.Provider, cfg config.Accessor, prompt promptUtils.Prompter) *cobra.Command {
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Manage HiveGrid server definitions",
	}

	serverCmd.AddCommand(newListCmd(provider))
	serverCmd.AddCommand(newShowCmd(provider))
	serverCmd.AddCommand(newResolveCmd(provider))
	serverCmd.AddCommand(newAddCmd(cfg, prompt))
	serverCmd.AddCommand(newRemoveCmd(cfg))

	return serverCmd
}

func newListCmd(provider *api.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := provider.GetServerNames()
			if err != nil {
				return fmt.Errorf("failed to list servers: %w", err)
			}
			if len(names) == 0 {
				fmt.Println("No servers configured.")
				return nil
			}
			for _, name := range names {
				summary, err := provider.GetServerSummary(name)
				if err != nil {
					return err
				}
				fmt.Println(summary)
			}
			return nil
		},
	}
}

func newShowCmd(provider *api.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a server's summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := provider.GetServerSummary(args[0])
			if err != nil {
				return err
			}
			if summary == "" {
				return fmt.Errorf("unknown server: %s", args[0])
			}
			fmt.Println(summary)
			return nil
		},
	}
}

func newResolveCmd(provider *api.Provider) *cobra.Command {
	var flushCache bool
	var suppressCredentials bool

	cmd := &cobra.Command{
		Use:   "resolve <name>",
		Short: "Resolve a server's connection descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := provider.GetServerSpec(args[0], config.ScopeEffective, flushCache, suppressCredentials)
			if err != nil {
				return fmt.Errorf("failed to resolve server: %w", err)
			}
			if spec == nil {
				fmt.Println("Resolution did not complete.")
				return nil
			}
			fmt.Printf("URL:     %s\n", spec.WebServer.BaseURL())
			fmt.Printf("Account: %s\n", provider.GetAccount(spec))
			return nil
		},
	}
	cmd.Flags().BoolVar(&flushCache, "flush-cache", false, "discard the cached credential before resolving")
	cmd.Flags().BoolVar(&suppressCredentials, "no-credentials", false, "resolve connection coordinates only")
	return cmd
}

func newAddCmd(cfg config.Accessor, prompt promptUtils.Prompter) *cobra.Command {
	var workspace bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or update a server definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := promptDefinition(args[0], prompt)
			if err != nil {
				if errors.Is(err, promptUtils.ErrInterrupted) {
					return promptUtils.ErrInterrupted
				}
				return err
			}

			scope := config.ScopeUser
			if workspace {
				scope = config.ScopeWorkspace
			}
			if err := cfg.SetServer(*def, scope); err != nil {
				return fmt.Errorf("failed to save server: %w", err)
			}
			fmt.Printf("Saved server %s at %s scope\n", def.Name, scope)
			return nil
		},
	}
	cmd.Flags().BoolVar(&workspace, "workspace", false, "save at workspace scope instead of user scope")
	return cmd
}

func promptDefinition(name string, prompt promptUtils.Prompter) (*models.ServerDefinition, error) {
	host, err := prompt.PromptForInput("Host", "")
	if err != nil {
		return nil, err
	}
	if host == "" {
		return nil, fmt.Errorf("host is required")
	}

	scheme, err := prompt.PromptForSelection("Scheme", []string{"http", "https"})
	if err != nil {
		return nil, err
	}

	portStr, err := prompt.PromptForInput("Port (blank for scheme default)", "")
	if err != nil {
		return nil, err
	}
	port := 0
	if portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid port: %s", portStr)
		}
	}

	pathPrefix, err := prompt.PromptForInput("Path prefix (optional)", "")
	if err != nil {
		return nil, err
	}

	description, err := prompt.PromptForInput("Description (optional)", "")
	if err != nil {
		return nil, err
	}

	return &models.ServerDefinition{
		Name: name,
		WebServer: models.WebServer{
			Scheme:     scheme,
			Host:       host,
			Port:       port,
			PathPrefix: pathPrefix,
		},
		Description: description,
	}, nil
}

func newRemoveCmd(cfg config.Accessor) *cobra.Command {
	var workspace bool

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a server definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := config.ScopeUser
			if workspace {
				scope = config.ScopeWorkspace
			}
			if err := cfg.RemoveServer(args[0], scope); err != nil {
				return fmt.Errorf("failed to remove server: %w", err)
			}
			fmt.Printf("Removed server %s from %s scope\n", args[0], scope)
			return nil
		},
	}
	cmd.Flags().BoolVar(&workspace, "workspace", false, "remove from workspace scope instead of user scope")
	return cmd
}
