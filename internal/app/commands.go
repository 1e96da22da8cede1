package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmellor/maestro/internal/adapter/registry"
	"github.com/tmellor/maestro/internal/config"
	"github.com/tmellor/maestro/internal/core/domain"
	"github.com/tmellor/maestro/internal/version"
)

// RootCommand materialises the composed command actions as a cobra tree.
// The registry decides what exists; this file only decides how each action
// runs from a terminal.
func (a *Application) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           version.Name,
		Short:         version.Description,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	groups := make(map[string]*cobra.Command)
	for _, action := range a.commands.Actions() {
		parent := root
		if action.Group != "" {
			grouped, ok := groups[action.Group]
			if !ok {
				grouped = &cobra.Command{Use: action.Group, Short: action.Group + " operations"}
				groups[action.Group] = grouped
				root.AddCommand(grouped)
			}
			parent = grouped
		}
		if cmd := a.commandFor(action); cmd != nil {
			parent.AddCommand(cmd)
		}
	}

	return root
}

func (a *Application) commandFor(action registry.CommandAction) *cobra.Command {
	switch action.ID {
	case ActionModelsSearch:
		return a.searchCommand(action)
	case ActionModelsPull:
		return a.pullCommand(action)
	case ActionChatSend:
		return a.chatCommand(action)
	case ActionAccountRepos:
		return a.reposCommand(action)
	case ActionConfigShow:
		return a.configShowCommand(action)
	default:
		a.logger.Warn("no runner for contributed command", "action", action.ID)
		return nil
	}
}

func (a *Application) searchCommand(action registry.CommandAction) *cobra.Command {
	var providerName string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: action.Title,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			cards, err := a.search(cmd.Context(), providerName, query)
			if err != nil {
				return err
			}

			for _, card := range cards {
				line := fmt.Sprintf("%-12s %s", card.Provider, card.ID)
				if len(card.Tags) > 0 {
					line += "  [" + strings.Join(card.Tags, ", ") + "]"
				}
				if card.RequiresToken {
					line += "  (token required)"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&providerName, "provider", "", "search a single provider (ollama, openrouter)")
	return cmd
}

// search dispatches to one provider when named, otherwise fans out through
// the aggregator.
func (a *Application) search(ctx context.Context, providerName, query string) ([]domain.ModelCard, error) {
	if providerName == "" {
		return a.aggregator.Search(ctx, query)
	}

	for _, searcher := range a.aggregator.Searchers() {
		if string(searcher.Provider()) == providerName {
			return searcher.Search(ctx, query)
		}
	}
	return nil, fmt.Errorf("unknown provider %q", providerName)
}

func (a *Application) pullCommand(action registry.CommandAction) *cobra.Command {
	return &cobra.Command{
		Use:   "pull <model>",
		Short: action.Title,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.puller.Pull(cmd.Context(), args[0])
		},
	}
}

func (a *Application) chatCommand(action registry.CommandAction) *cobra.Command {
	var backend, model string

	cmd := &cobra.Command{
		Use:   "send <prompt>",
		Short: action.Title,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.store.Snapshot()
			if backend == "" {
				backend = cfg.Providers.Chat.Backend
			}

			credential, err := chatCredential(cfg, backend)
			if err != nil {
				return err
			}

			body := map[string]any{
				"model": model,
				"messages": []any{
					map[string]any{
						"role":    "user",
						"content": strings.Join(args, " "),
					},
				},
			}

			payload, err := a.chatProxy.Execute(cmd.Context(), backend, credential, body)
			if err != nil {
				return err
			}

			rendered, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "", "chat backend (openai, anthropic)")
	cmd.Flags().StringVar(&model, "model", "", "model identifier to request")
	return cmd
}

func (a *Application) reposCommand(action registry.CommandAction) *cobra.Command {
	return &cobra.Command{
		Use:   "repos",
		Short: action.Title,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.store.Snapshot()
			account, err := a.fetcher.Fetch(cmd.Context(), cfg.Providers.GitHub.Token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", account.Username)
			for _, repo := range account.Repositories {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", repo)
			}
			return nil
		},
	}
}

func (a *Application) configShowCommand(action registry.CommandAction) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: action.Title,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := config.DumpEffective(a.store.Snapshot())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
