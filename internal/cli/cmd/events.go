package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	eventsLimit     int
	eventsPruneDays int
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the lifecycle event log",
	Long: `Show recent tab lifecycle events, newest first: tabs opened, closed,
suspended and resumed, profiles applied and resources reclaimed.`,
	RunE: runEvents,
}

var eventsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete events older than the retention period",
	RunE:  runEventsPrune,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsPruneCmd)
	eventsCmd.Flags().IntVarP(&eventsLimit, "limit", "n", 0, "number of events to show (default from config)")
	eventsPruneCmd.Flags().IntVar(&eventsPruneDays, "days", 0, "retention in days (default from config)")
}

func runEvents(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	limit := eventsLimit
	if limit <= 0 {
		limit = app.Config.Events.MaxListed
	}
	events, err := app.EventLogUC.Recent(app.Ctx(), limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderEvents(events))
	return nil
}

func runEventsPrune(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	days := eventsPruneDays
	if days <= 0 {
		days = app.Config.Events.RetentionDays
	}
	removed, err := app.EventLogUC.Prune(app.Ctx(), days)
	if err != nil {
		return err
	}

	t := app.Theme
	fmt.Fprintf(cmd.OutOrStdout(), "%s removed %d events older than %d days\n",
		t.SuccessStyle.Render("✓"), removed, days)
	return nil
}
