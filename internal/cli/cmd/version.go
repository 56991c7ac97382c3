package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dozer/internal/cli/styles"
	"github.com/bnema/dozer/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		t := styles.NewTheme()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", t.Title.Render("dozer"), t.Highlight.Render(buildInfo.Version))
		fmt.Fprintf(out, "%s %s\n", t.Subtle.Render("commit:"), buildInfo.Commit)
		fmt.Fprintf(out, "%s %s\n", t.Subtle.Render("built: "), buildInfo.BuildDate)
		fmt.Fprintf(out, "%s %s\n", t.Subtle.Render("go:    "), buildInfo.GoVersion)
		fmt.Fprintf(out, "%s %s\n", t.Subtle.Render("repo:  "), build.RepoURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
