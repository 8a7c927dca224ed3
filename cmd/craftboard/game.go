package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/craftboard/internal/bootstrap"
	"github.com/osse101/craftboard/internal/crafting"
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/session"
)

// combineOutput is the JSON shape of the combine command
type combineOutput struct {
	Outcome       string   `json:"outcome"`
	RecipeID      string   `json:"recipe_id,omitempty"`
	Products      []string `json:"products,omitempty"`
	NewlyUnlocked []string `json:"newly_unlocked,omitempty"`
	Message       string   `json:"message,omitempty"`
}

func newCombineOutput(result crafting.CombineResult) combineOutput {
	out := combineOutput{
		Outcome:       result.Outcome.String(),
		Products:      result.Products,
		NewlyUnlocked: result.NewlyUnlocked,
	}
	if result.Recipe != nil {
		out.RecipeID = result.Recipe.ID()
	}
	switch result.Outcome {
	case crafting.AlreadyMade:
		out.Message = domain.MsgAlreadyMade
	case crafting.NoMatch:
		out.Message = msgNoMatch
	}
	return out
}

func newCombineCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "combine <item> <item>",
		Short: "Drop one unlocked item onto another",
		Long: `Spawn both items and combine them. Crafted products stay on the board;
sources of a failed combination are recycled.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				result, err := combineItems(ctx, app.Session, args[0], args[1])
				if err != nil {
					return err
				}

				out := newCombineOutput(result)
				return opts.emit(cmd.OutOrStdout(), out, func(w io.Writer) error {
					switch result.Outcome {
					case crafting.Crafted:
						fmt.Fprintf(w, msgCrafted, strings.Join(out.Products, ", "), out.RecipeID)
						if len(out.NewlyUnlocked) > 0 {
							fmt.Fprintf(w, msgNewlyUnlocked, strings.Join(out.NewlyUnlocked, ", "))
						}
					default:
						fmt.Fprintln(w, out.Message)
					}
					return nil
				})
			})
		},
	}
}

// combineItems spawns both items side by side and combines them
func combineItems(ctx context.Context, game *session.Session, firstID, secondID string) (crafting.CombineResult, error) {
	first, err := game.Spawn(ctx, firstID, domain.Position{})
	if err != nil {
		return crafting.CombineResult{}, err
	}
	second, err := game.Spawn(ctx, secondID, domain.Position{X: 1})
	if err != nil {
		_ = game.Remove(ctx, first)
		return crafting.CombineResult{}, err
	}

	result, err := game.Combine(ctx, first, second)
	if err != nil || result.Outcome != crafting.Crafted {
		_ = game.Remove(ctx, first)
		_ = game.Remove(ctx, second)
	}
	return result, err
}

func newBoardCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				return printBoard(cmd.OutOrStdout(), opts, app.Session.Board())
			})
		},
	}

	cmd.AddCommand(newBoardSpawnCommand(opts))
	cmd.AddCommand(newBoardRecycleCommand(opts, "clear", "Recycle every instance on the board",
		func(ctx context.Context, s *session.Session) []domain.BoardElement { return s.MassClear(ctx) }))
	cmd.AddCommand(newBoardRecycleCommand(opts, "unusable", "Recycle final and depleted items",
		func(ctx context.Context, s *session.Session) []domain.BoardElement { return s.ClearUnusable(ctx) }))

	return cmd
}

func newBoardSpawnCommand(opts *globalOptions) *cobra.Command {
	var x, y float64

	cmd := &cobra.Command{
		Use:   "spawn <item>",
		Short: "Place an unlocked item on the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				handle, err := app.Session.Spawn(ctx, args[0], domain.Position{X: x, Y: y})
				if err != nil {
					return err
				}
				out := crafting.Spawned{ItemID: args[0], Handle: handle}
				return opts.emit(cmd.OutOrStdout(), out, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, msgSpawned, out.ItemID, out.Handle)
					return err
				})
			})
		},
	}

	cmd.Flags().Float64Var(&x, flagX, 0, "X position")
	cmd.Flags().Float64Var(&y, flagY, 0, "Y position")
	return cmd
}

func newBoardRecycleCommand(opts *globalOptions, use, short string, action func(context.Context, *session.Session) []domain.BoardElement) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				affected := action(ctx, app.Session)
				if affected == nil {
					affected = []domain.BoardElement{}
				}
				return opts.emit(cmd.OutOrStdout(), affected, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, msgCleared, len(affected))
					return err
				})
			})
		},
	}
}

func printBoard(w io.Writer, opts *globalOptions, board session.BoardView) error {
	return opts.emit(w, board, func(w io.Writer) error {
		if len(board.Elements) == 0 {
			_, err := fmt.Fprintln(w, msgBoardEmpty)
			return err
		}
		tw := newTable(w)
		fmt.Fprintln(tw, "ITEM\tX\tY")
		for _, el := range board.Elements {
			fmt.Fprintf(tw, "%s\t%.1f\t%.1f\n", el.ItemID, el.Position.X, el.Position.Y)
		}
		return tw.Flush()
	})
}

func newHintCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hint",
		Short: "Reveal an item that can be crafted next",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				hint, err := app.Session.RequestHint(ctx)
				if err != nil {
					if errors.Is(err, crafting.ErrNoHintAvailable) {
						fmt.Fprintln(cmd.OutOrStdout(), msgNothingToHint)
						return nil
					}
					return err
				}
				return opts.emit(cmd.OutOrStdout(), hint, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, msgHintGiven, hint.Message)
					return err
				})
			})
		},
	}
}

func newResetCommand(opts *globalOptions) *cobra.Command {
	var confirm string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all progress and the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if confirm != confirmYes {
				return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msgResetAborted)
			}
			return opts.withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				app.Session.Reset(ctx)
				_, err := fmt.Fprintln(cmd.OutOrStdout(), msgGameReset)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&confirm, flagConfirm, "", "Must be \"yes\" to reset")
	return cmd
}
