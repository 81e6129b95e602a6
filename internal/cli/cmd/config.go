package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/remotenav/internal/cli/styles"
	"github.com/bnema/remotenav/internal/infrastructure/config"
)

var configSchemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long: `Inspect the remotenav configuration.

The config file lives at $XDG_CONFIG_HOME/remotenav/config.toml and is
created with defaults on first run. Every key can be overridden with a
REMOTENAV_<SECTION>_<KEY> environment variable.`,
	RunE: runConfigStatus,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configDiffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show settings that differ from the defaults",
	RunE:  runConfigDiff,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of the config file.

With --write the schema is saved next to config.toml, where editors with
TOML schema support (taplo, Even Better TOML) can pick it up.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd, configDiffCmd, configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write the schema file instead of printing it")
}

// runConfigStatus shows the config file path and how far it is from the defaults.
func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderConfigInfo(configFile, len(changesFromDefaults(app.Config))))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	configFile, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	fmt.Println(configFile)
	return nil
}

func runConfigDiff(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	changes := changesFromDefaults(app.Config)
	if len(changes) == 0 {
		fmt.Println(app.Theme.EmptyState("Config matches the defaults"))
		return nil
	}
	fmt.Println(renderer.RenderChanges(changes))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if configSchemaWrite {
		path, err := config.WriteSchemaFile()
		if err != nil {
			return err
		}
		fmt.Println(styles.NewConfigRenderer(styles.NewTheme()).RenderSchemaWritten(path))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// changesFromDefaults diffs cfg against the defaults. Paths resolved at load
// time are not counted as changes.
func changesFromDefaults(cfg *config.Config) []config.KeyChange {
	defaults := config.DefaultConfig()
	if defaults.Database.Path == "" {
		defaults.Database.Path = cfg.Database.Path
	}
	if defaults.Logging.LogDir == "" {
		defaults.Logging.LogDir = cfg.Logging.LogDir
	}
	return config.Diff(defaults, cfg)
}
