package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Rearrange the layout with the mouse",
	Long: `Draw the working layout in the terminal and edit it interactively.

Drag a tab onto another stack to move the panel: the highlighted area shows
where it will land. Drag the border between two stacks to resize them and
the top row of a floating window to move it. Press s to write the layout
back to disk.

Drag tuning is re-read whenever the config file changes.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()
	log := logging.FromContext(ctx)

	uc, restored, err := a.LoadLayout(ctx)
	if err != nil {
		return err
	}

	cfg := model.PreviewModelConfig{
		Layout:      uc,
		DragOptions: cli.DragOptionsFrom(a.Config, true),
		Save:        a.SnapshotUC.Execute,
		Path:        a.Store.Path(),
	}
	if restored.Source == usecase.RestoreFromFallback {
		// keep the unreadable file for the user to fix
		fmt.Println(styles.NewLayoutRenderer(a.Theme).RenderRestoreSource(restored, a.Store.Path()))
		cfg.Save = nil
	}

	p := tea.NewProgram(model.NewPreviewModel(ctx, a.Theme, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())

	if a.Manager != nil {
		a.Manager.OnConfigChange(func(next *config.Config) {
			p.Send(model.DragOptionsMsg(cli.DragOptionsFrom(next, true)))
		})
		if err := a.Manager.Watch(ctx); err != nil {
			log.Warn().Err(err).Msg("config watch disabled")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
