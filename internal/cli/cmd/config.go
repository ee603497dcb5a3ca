package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var (
	schemaJSON    bool
	schemaWrite   bool
	schemaSection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and every path dockyard uses",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List every configuration key with its default",
	Long: `List every configuration key with its type, default and description.

With --write the JSON schema used by editors is regenerated next to the
config file.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "print the keys as JSON")
	configSchemaCmd.Flags().BoolVar(&schemaWrite, "write", false, "write config.schema.json next to the config file")
	configSchemaCmd.Flags().StringVar(&schemaSection, "section", "", "only list one section, e.g. drag")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(a.Theme)

	path := configFile
	if path == "" && a.Manager != nil {
		path = a.Manager.GetConfigFile()
	}
	if path == "" {
		if path, err = config.GetConfigFile(); err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		fmt.Println(renderer.RenderNoConfigFile(path))
		return nil
	}

	schemaFile, err := config.GetSchemaFile()
	if configFile != "" || err != nil {
		schemaFile = filepath.Join(filepath.Dir(path), "config.schema.json")
	}
	fmt.Println(renderer.RenderConfigInfo(styles.ConfigPaths{
		Config:   path,
		Schema:   schemaFile,
		Layout:   a.Config.Layout.File,
		Database: a.Config.Database.Path,
		LogDir:   a.Config.Logging.LogDir,
	}))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if schemaWrite {
		renderer := styles.NewConfigRenderer(a.Theme)
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		path, err := config.GenerateSchemaFile(dir)
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return err
		}
		fmt.Println(renderer.RenderSchemaWritten(path))
		return nil
	}

	out, err := a.ConfigSchemaUC.Execute(a.Ctx(), usecase.GetConfigSchemaInput{Section: schemaSection})
	if err != nil {
		return err
	}
	renderer := styles.NewConfigSchemaRenderer(a.Theme)
	if schemaJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}
	fmt.Println(renderer.Render(out.Keys))
	return nil
}
