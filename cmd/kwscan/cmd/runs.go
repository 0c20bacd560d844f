package cmd

import (
	"fmt"

	"github.com/corey/kwscan/internal/app"
	"github.com/spf13/cobra"
)

var runsJSON bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage saved search runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the result of a saved run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

var runsRmCmd = &cobra.Command{
	Use:   "rm <id> [id ...]",
	Short: "Delete saved runs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRunsRm,
}

func init() {
	runsShowCmd.Flags().BoolVar(&runsJSON, "json", false, "Emit the run as JSON")
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsRmCmd)
}

// openRuns builds the App and opens its run database.
func openRuns(cmd *cobra.Command) (*app.App, error) {
	a, err := setupApp(cmd, app.Overrides{})
	if err != nil {
		return nil, err
	}
	if _, err := a.OpenStore(); err != nil {
		return nil, fmt.Errorf("open run store %s: %w", a.DBPath(), err)
	}
	return a, nil
}

func runRunsList(cmd *cobra.Command, args []string) error {
	a, err := openRuns(cmd)
	if err != nil {
		return fail(cmd, err)
	}
	defer a.Close()

	runs, err := a.Store.ListRuns()
	if err != nil {
		return fail(cmd, err)
	}
	out := cmd.OutOrStdout()
	writeRunList(out, runs, newPalette(resolveColor(colorMode, out)))
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	a, err := openRuns(cmd)
	if err != nil {
		return fail(cmd, err)
	}
	defer a.Close()

	run, err := a.Store.LoadRun(args[0])
	if err != nil {
		return fail(cmd, err)
	}
	if run == nil {
		return fail(cmd, fmt.Errorf("run %s not found", args[0]))
	}

	out := cmd.OutOrStdout()
	if runsJSON {
		if err := writeJSON(out, run, nil); err != nil {
			return fail(cmd, err)
		}
		return nil
	}
	p := newPalette(resolveColor(colorMode, out))
	fmt.Fprintf(out, "%s %s\n", p.bold("run"), run.ID)
	fmt.Fprintf(out, "  Root:     %s\n", run.Root)
	fmt.Fprintf(out, "  Started:  %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "  Workers:  %d\n", run.Workers)
	writeRun(out, run, nil, p)
	return nil
}

func runRunsRm(cmd *cobra.Command, args []string) error {
	a, err := openRuns(cmd)
	if err != nil {
		return fail(cmd, err)
	}
	defer a.Close()

	for _, id := range args {
		if err := a.Store.DeleteRun(id); err != nil {
			return fail(cmd, fmt.Errorf("delete %s: %w", id, err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", id)
	}
	return nil
}
