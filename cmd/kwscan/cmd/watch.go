package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corey/kwscan/internal/domain/search"
	"github.com/corey/kwscan/internal/ports"
	"github.com/spf13/cobra"
)

var (
	watchFlags scanFlags
	watchSave  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Rerun the search whenever the corpus changes",
	Long:  "Runs a search, then reruns the full search each time matching files change. Only one watch session per project may run at a time. Stop with Ctrl-C.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchFlags.register(watchCmd)
	watchCmd.Flags().BoolVar(&watchSave, "save", false, "Persist every run to the run database")
}

func runWatch(cmd *cobra.Command, args []string) error {
	o := watchFlags.overrides(cmd, args)
	if cmd.Flags().Changed("save") {
		o.Save = &watchSave
	}
	a, err := setupApp(cmd, o)
	if err != nil {
		return fail(cmd, err)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	p := newPalette(resolveColor(colorMode, out))
	err = a.Watch(ctx.Done(), func(run *ports.Run, report *search.Report, err error) {
		fmt.Fprintf(out, "%s\n", p.dim(fmt.Sprintf("── %s", time.Now().Format("15:04:05"))))
		if run != nil {
			writeRun(out, run, nil, p)
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "kwscan: %v\n", err)
		}
	})
	if err != nil {
		return fail(cmd, err)
	}
	return nil
}
