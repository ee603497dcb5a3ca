package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

var (
	splitTarget string
	splitZone   string
	splitRatio  float64
	moveTarget  string
	moveZone    string
	dockTarget  string
	dockZone    string
	undockFrame string
)

var layoutSplitCmd = &cobra.Command{
	Use:   "split <panel>",
	Short: "Dock a new panel next to an existing one",
	Long: `Dock a new panel relative to the stack holding --next-to.

Examples:
  dockyard layout split Console --next-to Viewport --zone bottom --ratio 0.7
  dockyard layout split Assets --next-to Hierarchy --zone center`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return mutate(func(ctx context.Context, uc *usecase.ManageLayoutUseCase) (*usecase.MutationOutput, error) {
			target, zone, err := resolveDrop(uc.Tree(), splitTarget, splitZone)
			if err != nil {
				return nil, err
			}
			return uc.Split(ctx, usecase.SplitPanelInput{
				Target: target,
				Panel:  entity.PanelID(args[0]),
				Zone:   zone,
				Ratio:  splitRatio,
			})
		})
	},
}

var layoutMoveCmd = &cobra.Command{
	Use:   "move <panel>",
	Short: "Move a panel next to or into another stack",
	Long: `Move a panel as if it had been dragged onto --to at --zone.

Examples:
  dockyard layout move Inspector --to Viewport --zone right
  dockyard layout move Hierarchy --to Inspector --zone center`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return mutate(func(ctx context.Context, uc *usecase.ManageLayoutUseCase) (*usecase.MutationOutput, error) {
			target, zone, err := resolveDrop(uc.Tree(), moveTarget, moveZone)
			if err != nil {
				return nil, err
			}
			return uc.MovePanel(ctx, usecase.MovePanelInput{Panel: entity.PanelID(args[0]), Target: target, Zone: zone})
		})
	},
}

var layoutCloseCmd = &cobra.Command{
	Use:   "close <panel>",
	Short: "Remove a panel from the layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return mutate(func(ctx context.Context, uc *usecase.ManageLayoutUseCase) (*usecase.MutationOutput, error) {
			return uc.ClosePanel(ctx, entity.PanelID(args[0]))
		})
	},
}

var layoutUndockCmd = &cobra.Command{
	Use:   "undock <panel>",
	Short: "Float a panel in its own window",
	Long: `Float a panel in a new window placed at --frame (x,y,w,h).

Example:
  dockyard layout undock Inspector --frame 200,120,480,360`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		frame, err := parseFrame(undockFrame)
		if err != nil {
			return err
		}
		return mutate(func(ctx context.Context, uc *usecase.ManageLayoutUseCase) (*usecase.MutationOutput, error) {
			return uc.Undock(ctx, entity.PanelID(args[0]), frame)
		})
	},
}

var layoutDockCmd = &cobra.Command{
	Use:   "dock <panel>",
	Short: "Dock the floating window holding a panel",
	Long: `Dock every panel of the floating window that holds <panel>.

Example:
  dockyard layout dock Inspector --to Viewport --zone right`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return mutate(func(ctx context.Context, uc *usecase.ManageLayoutUseCase) (*usecase.MutationOutput, error) {
			tree := uc.Tree()
			leaf, err := leafOf(tree, args[0])
			if err != nil {
				return nil, err
			}
			window, ok := tree.RootOf(leaf)
			if !ok || tree.IsDocked(leaf) {
				return nil, fmt.Errorf("%w: panel %s is not floating", entity.ErrInvalidOperation, args[0])
			}
			target, zone, err := resolveDrop(tree, dockTarget, dockZone)
			if err != nil {
				return nil, err
			}
			return uc.DockFloating(ctx, usecase.DockFloatingInput{Window: window, Target: target, Zone: zone})
		})
	},
}

func init() {
	layoutCmd.AddCommand(layoutSplitCmd, layoutMoveCmd, layoutCloseCmd, layoutUndockCmd, layoutDockCmd)

	layoutSplitCmd.Flags().StringVar(&splitTarget, "next-to", string(entity.PanelViewport), "panel whose stack is split")
	layoutSplitCmd.Flags().StringVar(&splitZone, "zone", "right", "center, left, right, top or bottom")
	layoutSplitCmd.Flags().Float64Var(&splitRatio, "ratio", 0, "share of the split given to the first child (0 = config default)")

	layoutMoveCmd.Flags().StringVar(&moveTarget, "to", "", "panel whose stack is the drop target")
	layoutMoveCmd.Flags().StringVar(&moveZone, "zone", "center", "center, left, right, top or bottom")
	_ = layoutMoveCmd.MarkFlagRequired("to")

	layoutDockCmd.Flags().StringVar(&dockTarget, "to", "", "panel whose stack receives the window")
	layoutDockCmd.Flags().StringVar(&dockZone, "zone", "center", "center, left, right, top or bottom")
	_ = layoutDockCmd.MarkFlagRequired("to")

	layoutUndockCmd.Flags().StringVar(&undockFrame, "frame", "100,100,400,300", "window frame as x,y,w,h")
}

// mutate loads the working layout, applies one change and saves it.
func mutate(op func(ctx context.Context, uc *usecase.ManageLayoutUseCase) (*usecase.MutationOutput, error)) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	renderer := styles.NewLayoutRenderer(a.Theme)

	uc, restored, err := a.LoadLayout(ctx)
	if err != nil {
		return err
	}
	if restored.Source == usecase.RestoreFromFallback {
		// editing would overwrite the unreadable file with the fallback
		fmt.Println(renderer.RenderRestoreSource(restored, a.Store.Path()))
		return fmt.Errorf("refusing to edit %s: %w", a.Store.Path(), restored.DecodeErr)
	}

	out, err := op(ctx, uc)
	if err != nil {
		return err
	}
	if out.Changed || restored.Source == usecase.RestoreFromDefault {
		if err := a.SaveLayout(ctx, uc); err != nil {
			return err
		}
	}
	fmt.Println(renderer.RenderMutation(out, a.Store.Path()))
	return nil
}

func leafOf(tree *entity.LayoutTree, panel string) (entity.ContainerID, error) {
	leaf, ok := tree.FindLeafContaining(entity.PanelID(panel))
	if !ok {
		return entity.NoContainer, fmt.Errorf("%w: panel %s is not in the layout", entity.ErrInvalidOperation, panel)
	}
	return leaf, nil
}

func resolveDrop(tree *entity.LayoutTree, panel, zone string) (entity.ContainerID, entity.DropZone, error) {
	leaf, err := leafOf(tree, panel)
	if err != nil {
		return entity.NoContainer, entity.DropCenter, err
	}
	z, err := entity.ParseDropZone(strings.ToLower(zone))
	if err != nil {
		return entity.NoContainer, entity.DropCenter, err
	}
	return leaf, z, nil
}

// parseFrame reads "x,y,w,h".
func parseFrame(s string) (entity.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return entity.Rect{}, fmt.Errorf("frame %q: want x,y,w,h", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return entity.Rect{}, fmt.Errorf("frame %q: %w", s, err)
		}
		v[i] = f
	}
	r := entity.NewRect(v[0], v[1], v[2], v[3])
	if r.Empty() {
		return entity.Rect{}, fmt.Errorf("frame %q: width and height must be positive", s)
	}
	return r, nil
}
