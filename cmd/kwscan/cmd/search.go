package cmd

import (
	"github.com/spf13/cobra"
)

var (
	searchFlags       scanFlags
	searchSave        bool
	searchJSON        bool
	searchShowSkipped bool
)

var searchCmd = &cobra.Command{
	Use:   "search [dir]",
	Short: "Search the files of a directory for keywords",
	Long:  "Scans every matching file under dir (default: configured root) and lists, per keyword, the files containing it. Exit status is 0 when a keyword was found, 1 when none was, 2 on error.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchFlags.register(searchCmd)
	f := searchCmd.Flags()
	f.BoolVar(&searchSave, "save", false, "Persist the run to the run database")
	f.BoolVar(&searchJSON, "json", false, "Emit the result as JSON")
	f.BoolVar(&searchShowSkipped, "show-skipped", false, "List files that could not be read")
}

func runSearch(cmd *cobra.Command, args []string) error {
	o := searchFlags.overrides(cmd, args)
	if cmd.Flags().Changed("save") {
		o.Save = &searchSave
	}
	a, err := setupApp(cmd, o)
	if err != nil {
		return fail(cmd, err)
	}
	defer a.Close()

	run, report, err := a.Search()
	if run == nil {
		return fail(cmd, err)
	}

	out := cmd.OutOrStdout()
	if searchJSON {
		if jerr := writeJSON(out, run, report.Skipped); jerr != nil {
			return fail(cmd, jerr)
		}
	} else {
		p := newPalette(resolveColor(colorMode, out))
		skipped := report.Skipped
		if !searchShowSkipped {
			skipped = nil
		}
		writeRun(out, run, skipped, p)
	}
	if err != nil {
		return fail(cmd, err)
	}

	if len(report.Result.Keywords()) == 0 {
		return exitError{1}
	}
	return nil
}
