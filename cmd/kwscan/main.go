// kwscan searches a directory of text files for a set of keywords in parallel.
// It reports, for every keyword, the files that contain it.
package main

import (
	"fmt"
	"os"

	"github.com/corey/kwscan/cmd/kwscan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		fmt.Fprintf(os.Stderr, "kwscan: %v\n", err)
		os.Exit(2)
	}
}
