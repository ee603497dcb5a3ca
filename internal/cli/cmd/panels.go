package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
)

var panelsLimit int

var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "Query panels in the working layout",
}

var panelsFindCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Fuzzy-find panels by name",
	Long: `Fuzzy-find panels by name. Without a query every panel is listed in
layout order.

Examples:
  dockyard panels find insp
  dockyard panels find --limit 3 con`,
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		ctx := a.Ctx()

		uc, _, err := a.LoadLayout(ctx)
		if err != nil {
			return err
		}
		out, err := a.SearchPanelsUC.Execute(ctx, usecase.SearchPanelsInput{
			Tree:  uc.Tree(),
			Query: strings.Join(args, " "),
			Limit: panelsLimit,
		})
		if err != nil {
			return err
		}
		fmt.Println(styles.NewLayoutRenderer(a.Theme).RenderPanelMatches(out.Matches))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(panelsCmd)
	panelsCmd.AddCommand(panelsFindCmd)
	panelsFindCmd.Flags().IntVarP(&panelsLimit, "limit", "n", 0, "maximum number of matches (0 = all)")
}
