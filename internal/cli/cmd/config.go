package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dozer/internal/cli/styles"
	"github.com/bnema/dozer/internal/infrastructure/config"
)

var (
	configForce        bool
	configSchemaOutput string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Create, locate, validate and describe the configuration file.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write config.toml with every setting at its default value.

An existing file is left untouched unless --force is given.`,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml, for editor completion and validation.

With --output the schema is written to a file instead.`,
	RunE: runConfigSchema,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config file",
	RunE:  runConfigCheck,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configPathCmd, configSchemaCmd, configCheckCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to this file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	t := styles.NewTheme()
	out := cmd.OutOrStdout()

	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		fmt.Fprintf(out, "%s %s already exists, use --force to overwrite\n", t.WarningStyle.Render("!"), path)
		return nil
	} else if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, statErr)
	}

	if err := config.EnsureDirectories(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s wrote %s\n", t.SuccessStyle.Render("✓"), t.Highlight.Render(path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaOutput != "" {
		if err := config.WriteSchemaFile(configSchemaOutput); err != nil {
			return err
		}
		t := styles.NewTheme()
		fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %s\n", t.SuccessStyle.Render("✓"), t.Highlight.Render(configSchemaOutput))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	t := styles.NewTheme()

	mgr, err := config.NewManager()
	if err != nil {
		return err
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", t.ErrorStyle.Render("✗"), err)
		return errors.New("invalid configuration")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid\n", t.SuccessStyle.Render("✓"), mgr.GetConfigFile())
	return nil
}
