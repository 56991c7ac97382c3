package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dozer/internal/cli/model"
	"github.com/bnema/dozer/internal/logging"
)

const shutdownTimeout = 5 * time.Second

var runTUI bool

var runCmd = &cobra.Command{
	Use:   "run [url...]",
	Short: "Start the engine and manage tab lifecycles",
	Long: `Start the browser engine, open one tab per URL and suspend tabs that
stay idle in the background.

With --tui a live monitor lists every tab:
  enter  select the tab (resumes it when suspended)
  p      apply the next performance profile
  r      reclaim caches, visited links and cookies
  s      run a suspend pass now

Examples:
  dozer run https://example.com https://news.ycombinator.com
  dozer run --tui https://example.com`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runTUI, "tui", false, "open the interactive tab monitor")
}

func runRun(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	rt, err := app.StartRuntime(ctx)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if closeErr := rt.Close(closeCtx); closeErr != nil {
			log.Warn().Err(closeErr).Msg("engine shutdown failed")
		}
	}()

	if err := rt.OpenTabs(ctx, args); err != nil {
		return err
	}
	if err := rt.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	if runTUI {
		p := tea.NewProgram(
			model.NewMonitorModel(ctx, app.Theme, rt.Coordinator).WithTabChanges(rt.TabChanges()),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("monitor: %w", err)
		}
		return nil
	}

	log.Info().Int("tabs", len(args)).Msg("dozer running, press Ctrl+C to stop")
	<-ctx.Done()
	return nil
}
