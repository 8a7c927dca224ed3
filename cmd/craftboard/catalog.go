package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/craftboard/internal/bootstrap"
	"github.com/osse101/craftboard/internal/crafting"
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/handler"
	"github.com/osse101/craftboard/internal/logger"
)

// parseState turns --state into an optional lock filter
func parseState(state string) (unlocked bool, filtered bool, err error) {
	switch state {
	case stateAll, "":
		return false, false, nil
	case stateUnlocked:
		return true, true, nil
	case stateLocked:
		return false, true, nil
	default:
		return false, false, fmt.Errorf("%w: "+errMsgInvalidState, domain.ErrInvalidInput, state)
	}
}

func newItemsCommand(opts *globalOptions) *cobra.Command {
	var keyword, state string

	cmd := &cobra.Command{
		Use:   "items [id]",
		Short: "List items, or show one item",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unlocked, filtered, err := parseState(state)
			if err != nil {
				return err
			}
			var k domain.Keyword
			if keyword != "" {
				var ok bool
				if k, ok = domain.ParseKeyword(keyword); !ok {
					return fmt.Errorf("%w: "+errMsgBadKeyword, domain.ErrInvalidInput, keyword)
				}
			}

			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				var items []crafting.ItemView
				switch {
				case len(args) == 1:
					item, err := app.Session.Item(ctx, args[0])
					if err != nil {
						return err
					}
					items = []crafting.ItemView{item}
				case k != "":
					items = app.Session.ItemsWithKeyword(ctx, k)
				case filtered:
					items = app.Session.ItemsByLockState(ctx, unlocked)
				default:
					items = app.Session.Items(ctx)
				}

				if k != "" && filtered {
					items = filterItemsByLock(items, unlocked)
				}
				if items == nil {
					items = []crafting.ItemView{}
				}
				return opts.emit(cmd.OutOrStdout(), items, func(w io.Writer) error {
					return printItems(w, items)
				})
			})
		},
	}

	cmd.Flags().StringVar(&keyword, flagKeyword, "", "Only items with this keyword (Basic, Hint, Depleted)")
	cmd.Flags().StringVar(&state, flagState, stateAll, "Lock state filter: all, unlocked or locked")
	return cmd
}

func filterItemsByLock(items []crafting.ItemView, unlocked bool) []crafting.ItemView {
	out := make([]crafting.ItemView, 0, len(items))
	for _, item := range items {
		if item.Unlocked == unlocked {
			out = append(out, item)
		}
	}
	return out
}

func newRecipesCommand(opts *globalOptions) *cobra.Command {
	var state, itemID string

	cmd := &cobra.Command{
		Use:   "recipes [id]",
		Short: "List recipes, or show one recipe",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unlocked, filtered, err := parseState(state)
			if err != nil {
				return err
			}

			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				var recipes []crafting.RecipeView
				switch {
				case len(args) == 1:
					recipe, err := app.Session.Recipe(ctx, args[0])
					if err != nil {
						return err
					}
					recipes = []crafting.RecipeView{recipe}
				case itemID != "":
					producing, using, err := app.Session.RecipesForItem(ctx, itemID)
					if err != nil {
						return err
					}
					recipes = append(producing, using...)
				case filtered:
					recipes = app.Session.RecipesByLockState(ctx, unlocked)
				default:
					recipes = app.Session.Recipes(ctx)
				}

				if recipes == nil {
					recipes = []crafting.RecipeView{}
				}
				return opts.emit(cmd.OutOrStdout(), recipes, func(w io.Writer) error {
					return printRecipes(w, recipes)
				})
			})
		},
	}

	cmd.Flags().StringVar(&state, flagState, stateAll, "Lock state filter: all, unlocked or locked")
	cmd.Flags().StringVar(&itemID, flagItem, "", "Only recipes producing or consuming this item")
	return cmd
}

func newStatsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show unlock progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				stats := app.Session.Stats()
				return opts.emit(cmd.OutOrStdout(), stats, func(w io.Writer) error {
					return printStats(w, stats)
				})
			})
		},
	}
}

func newValidateCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog file without touching any save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			logger.InitLoggerWithWriter(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false), cmd.ErrOrStderr())

			cat, err := bootstrap.LoadCatalog(cmd.Context(), cfg.CatalogPath)
			if err != nil {
				return err
			}

			summary := map[string]int{
				"items":   len(cat.Items()),
				"recipes": len(cat.Recipes()),
				"tips":    len(cat.Tips()),
			}
			return opts.emit(cmd.OutOrStdout(), summary, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, msgCatalogValid, summary["items"], summary["recipes"], summary["tips"])
				return err
			})
		},
	}
}

func newVersionCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := handler.CurrentVersion()
			return opts.emit(cmd.OutOrStdout(), info, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, msgVersion, appName, info.Version, info.GoVersion, info.GitCommit)
				return err
			})
		},
	}
}
