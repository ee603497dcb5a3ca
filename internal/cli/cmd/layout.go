package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/layout"
	"github.com/bnema/dockyard/internal/infrastructure/layoutfile"
)

const (
	syntaxStyle       = "monokai"
	terminalFormatter = "terminal256"
	validateWorkers   = 4
)

var (
	showWidth   float64
	showHeight  float64
	showJSON    bool
	catNoColor  bool
	schemaOut   string
	resetRemove bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and edit the working layout",
	Long: `Inspect and edit the working layout file.

Panels are addressed by name. Every editing command loads the layout,
applies one change and writes the file back.`,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the layout tree with solved rectangles",
	Long: `Print the docked tree and every floating window.

Each container shows its id and, for the given viewport size, the rectangle
the solver assigns to it.

Examples:
  dockyard layout show
  dockyard layout show --width 1920 --height 1080
  dockyard layout show --json`,
	RunE: runLayoutShow,
}

var layoutValidateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Check that layout files decode into valid trees",
	Long: `Decode each file and check the tree it describes.

Without arguments the working layout file is checked. The format is taken
from each file's extension.`,
	RunE: runLayoutValidate,
}

var layoutResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the working layout with the default one",
	RunE:  runLayoutReset,
}

var layoutSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the layout file",
	RunE:  runLayoutSchema,
}

var layoutCatCmd = &cobra.Command{
	Use:   "cat",
	Short: "Print the working layout file with syntax highlighting",
	RunE:  runLayoutCat,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutShowCmd, layoutValidateCmd, layoutResetCmd, layoutSchemaCmd, layoutCatCmd)

	layoutShowCmd.Flags().Float64Var(&showWidth, "width", 1280, "viewport width used to solve rectangles")
	layoutShowCmd.Flags().Float64Var(&showHeight, "height", 800, "viewport height used to solve rectangles")
	layoutShowCmd.Flags().BoolVar(&showJSON, "json", false, "print the persisted form as JSON")
	layoutCatCmd.Flags().BoolVar(&catNoColor, "no-color", false, "print the file as is")
	layoutSchemaCmd.Flags().StringVarP(&schemaOut, "output", "o", "", "write the schema to a file")
	layoutResetCmd.Flags().BoolVar(&resetRemove, "remove", false, "delete the file instead of writing the default layout")
}

func runLayoutShow(_ *cobra.Command, _ []string) error {
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
	tree := uc.Tree()

	if showJSON {
		data, err := json.MarshalIndent(entity.ToPersisted(tree), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal layout: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if note := renderer.RenderRestoreSource(restored, a.Store.Path()); note != "" {
		fmt.Println(note)
		fmt.Println()
	}
	sol := layout.Solve(tree, entity.NewRect(0, 0, showWidth, showHeight), a.SolverOptions())
	fmt.Println(renderer.RenderTree(tree, &sol))
	return nil
}

func runLayoutValidate(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{a.Store.Path()}
	}

	results := validateFiles(a.Ctx(), args)
	fmt.Println(styles.NewLayoutRenderer(a.Theme).RenderValidation(results))

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d layout files invalid", failed, len(results))
	}
	return nil
}

// validateFiles decodes every path concurrently. Results keep the order of paths.
func validateFiles(ctx context.Context, paths []string) []styles.ValidationResult {
	results := make([]styles.ValidationResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(validateWorkers)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = validateFile(ctx, path)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func validateFile(ctx context.Context, path string) styles.ValidationResult {
	res := styles.ValidationResult{Path: path}

	store, err := layoutfile.NewOSStore(path)
	if err != nil {
		res.Err = err
		return res
	}
	persisted, err := store.Load(ctx)
	if err != nil {
		res.Err = err
		return res
	}
	tree, err := entity.FromPersisted(persisted)
	if err != nil {
		res.Err = err
		return res
	}
	res.Panels = len(tree.Panels())
	return res
}

func runLayoutReset(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewLayoutRenderer(a.Theme)

	if resetRemove {
		if err := a.Store.Remove(); err != nil {
			return err
		}
	} else if err := a.SnapshotUC.Execute(a.Ctx(), entity.DefaultLayoutTree()); err != nil {
		return err
	}
	fmt.Println(renderer.RenderReset(a.Store.Path()))
	return nil
}

func runLayoutSchema(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	data, err := a.LayoutSchemaUC.Execute(a.Ctx())
	if err != nil {
		return err
	}
	if schemaOut != "" {
		if err := os.WriteFile(schemaOut, data, 0o644); err != nil {
			return fmt.Errorf("write schema: %w", err)
		}
		fmt.Println(styles.NewConfigRenderer(a.Theme).RenderSchemaWritten(schemaOut))
		return nil
	}
	fmt.Println(string(data))
	return nil
}

func runLayoutCat(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	data, err := a.Store.ReadRaw()
	if errors.Is(err, port.ErrLayoutNotFound) {
		fmt.Println(styles.NewLayoutRenderer(a.Theme).RenderError(fmt.Errorf("no layout at %s yet", a.Store.Path())))
		return nil
	}
	if err != nil {
		return err
	}

	if catNoColor {
		_, err = os.Stdout.Write(data)
		return err
	}
	return quick.Highlight(os.Stdout, string(data), string(a.Store.Format()), terminalFormatter, syntaxStyle)
}
