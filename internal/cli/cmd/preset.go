package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Save and restore named layouts",
	Long: `Save the working layout under a name and bring it back later.

Presets live in a SQLite database next to the layout file. Saving under an
existing name replaces that preset.`,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the working layout as a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		ctx := a.Ctx()
		renderer := styles.NewPresetsCLIRenderer(a.Theme)

		uc, _, err := a.LoadLayout(ctx)
		if err != nil {
			return err
		}
		preset, err := a.PresetsUC.Save(ctx, args[0], uc.Tree())
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return err
		}
		fmt.Println(renderer.RenderSaved(preset))
		return nil
	},
}

var presetLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Replace the working layout with a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		ctx := a.Ctx()
		renderer := styles.NewPresetsCLIRenderer(a.Theme)

		tree, err := a.PresetsUC.Load(ctx, args[0])
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return err
		}
		uc, _, err := a.LoadLayout(ctx)
		if err != nil {
			return err
		}
		if _, err := uc.Replace(ctx, "load preset "+args[0], tree); err != nil {
			return err
		}
		if err := a.SaveLayout(ctx, uc); err != nil {
			return err
		}
		fmt.Println(renderer.RenderLoaded(args[0], a.Store.Path()))
		return nil
	},
}

var presetListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved presets",
	Args:    cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		presets, err := a.PresetsUC.List(a.Ctx())
		if err != nil {
			return err
		}
		fmt.Println(styles.NewPresetsCLIRenderer(a.Theme).RenderList(presets))
		return nil
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a preset",
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		renderer := styles.NewPresetsCLIRenderer(a.Theme)
		if err := a.PresetsUC.Delete(a.Ctx(), args[0]); err != nil {
			fmt.Println(renderer.RenderError(err))
			return err
		}
		fmt.Println(renderer.RenderDeleted(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetSaveCmd, presetLoadCmd, presetListCmd, presetDeleteCmd)
}
