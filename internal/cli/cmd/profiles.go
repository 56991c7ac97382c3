package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/dozer/internal/domain/entity"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List performance profiles",
	Long: `List the built-in and configured performance profiles.

The profile applied on the next 'dozer run' is marked.`,
	RunE: runProfiles,
}

var profilesUseCmd = &cobra.Command{
	Use:   "use <profile>",
	Short: "Select the profile applied on the next run",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesUse,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesUseCmd)
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	catalog, err := app.ProfileCatalog()
	if err != nil {
		return err
	}
	current := app.SelectedProfile(app.Ctx())
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderProfiles(catalog.Profiles(), current))
	return nil
}

func runProfilesUse(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	catalog, err := app.ProfileCatalog()
	if err != nil {
		return err
	}
	name := strings.ToLower(strings.TrimSpace(args[0]))
	if _, ok := catalog.Profile(name); !ok {
		return fmt.Errorf("%q: %w", name, entity.ErrUnknownProfile)
	}
	if err := app.Selection.SaveSelected(app.Ctx(), name); err != nil {
		return fmt.Errorf("save selection: %w", err)
	}

	t := app.Theme
	fmt.Fprintf(cmd.OutOrStdout(), "%s profile %s selected\n", t.SuccessStyle.Render("✓"), t.Highlight.Render(name))
	return nil
}
