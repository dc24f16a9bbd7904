package commands

import (
	"fmt"

	"github.com/qorex-scitech/lazo/internal/block"
	"github.com/qorex-scitech/lazo/internal/editor"
	"github.com/spf13/cobra"
)

// NewBlockCommand creates the block command group.
func NewBlockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Edit the blocks of the project diagram",
		Long: `Add, inspect and change the blocks of the model diagram.

Terminals are derived from the block kind and named <id>_in_<i> and
<id>_out_<i>. Changing a block's kind rebuilds its terminals.`,
	}

	cmd.AddCommand(newBlockAddCommand())
	cmd.AddCommand(newBlockListCommand())
	cmd.AddCommand(newBlockShowCommand())
	cmd.AddCommand(newBlockRemoveCommand())
	cmd.AddCommand(newBlockFlipCommand())
	cmd.AddCommand(newBlockMoveCommand())
	cmd.AddCommand(newBlockKindCommand())

	return cmd
}

func kindCompletion(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(block.Kinds()))
	for _, k := range block.Kinds() {
		names = append(names, k.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newBlockAddCommand() *cobra.Command {
	var (
		req        editor.AddRequest
		x, y, w, h float32
	)

	cmd := &cobra.Command{
		Use:   "add <kind>",
		Short: "Add a block",
		Example: `  lazo-model block add model/summing --id sum1 --x 120 --y 40
  lazo-model block add process --function "1/(s+1)"
  lazo-model block add node/python --function nodes/filter.py --width 120 --height 60`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: kindCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := block.ParseKind(args[0])
			if err != nil {
				return err
			}

			cmdCtx, s, cleanup, err := requireProject(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			req.Kind = kind
			req.Pos = block.Vec2{X: x, Y: y}
			req.Size = block.Vec2{X: w, Y: h}
			b, err := s.Add(cmd.Context(), req)
			if err != nil {
				return err
			}
			return renderBlock(cmdCtx.Out, b, cmdCtx.Cfg.OutputFormat)
		},
	}

	cmd.Flags().StringVar(&req.ID, "id", "", "Block id (generated when empty)")
	cmd.Flags().StringVar(&req.Function, "function", "", "Transfer function, or source file for node kinds")
	cmd.Flags().Float32Var(&x, "x", 0, "X position")
	cmd.Flags().Float32Var(&y, "y", 0, "Y position")
	cmd.Flags().Float32Var(&w, "width", 0, "Width (node kinds only, model kinds have fixed sizes)")
	cmd.Flags().Float32Var(&h, "height", 0, "Height (node kinds only)")
	cmd.Flags().BoolVar(&req.Flipped, "flipped", false, "Create the block flipped")

	return cmd
}

func newBlockListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List blocks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, s, cleanup, err := requireProject(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			blocks, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			return renderBlocks(cmdCtx.Out, blocks, cmdCtx.Cfg.OutputFormat)
		},
	}
}

func newBlockShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a block and its terminals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, s, cleanup, err := requireProject(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderBlock(cmdCtx.Out, b, cmdCtx.Cfg.OutputFormat)
		},
	}
}

func newBlockRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a block",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, s, cleanup, err := requireProject(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmdCtx.Out, "Removed %s\n", args[0])
			return nil
		},
	}
}

func newBlockFlipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flip <id>",
		Short: "Toggle a block's orientation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, s, cleanup, err := requireProject(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := s.Flip(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmdCtx.Out, "%s flipped=%t\n", b.ID, b.Flipped)
			return nil
		},
	}
}

func newBlockMoveCommand() *cobra.Command {
	var (
		x, y     float32
		relative bool
	)

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a block",
		Example: `  lazo-model block move sum1 --x 200 --y 40
  lazo-model block move sum1 --relative --x -10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, s, cleanup, err := requireProject(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			move := s.Move
			if relative {
				move = s.Nudge
			}
			b, err := move(cmd.Context(), args[0], block.Vec2{X: x, Y: y})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmdCtx.Out, "%s at %s\n", b.ID, formatPos(b.Pos))
			return nil
		},
	}

	cmd.Flags().Float32Var(&x, "x", 0, "X position")
	cmd.Flags().Float32Var(&y, "y", 0, "Y position")
	cmd.Flags().BoolVar(&relative, "relative", false, "Treat --x and --y as an offset from the current position")

	return cmd
}

func newBlockKindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kind <id> <kind>",
		Short: "Change a block's kind and rebuild its terminals",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := block.ParseKind(args[1])
			if err != nil {
				return err
			}

			cmdCtx, s, cleanup, err := requireProject(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			b, err := s.SetKind(cmd.Context(), args[0], kind)
			if err != nil {
				return err
			}
			return renderBlock(cmdCtx.Out, b, cmdCtx.Cfg.OutputFormat)
		},
	}
}
