// Package cmd provides Cobra CLI commands for dozer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dozer/internal/cli"
	"github.com/bnema/dozer/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "dozer",
		Short: "Suspend idle browser tabs and tune engine capabilities",
		Long: `Dozer keeps a headless browser lean.

Tabs that stay in the background longer than the idle threshold are
suspended: their page is swapped for a blank placeholder and restored the
next time the tab is selected. Performance profiles toggle WebGL,
JavaScript, images and animations for every tab at once.

Use 'dozer run' to start the engine, or explore the subcommands to inspect
profiles, the lifecycle event log and the configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// needsApp reports whether cmd works on a loaded configuration.
// Config file management runs without one so a broken file can be inspected.
func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "version":
		return false
	}
	if parent := cmd.Parent(); parent != nil && parent.Name() == "config" {
		return false
	}
	return true
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
