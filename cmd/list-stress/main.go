// Command list-stress fills, mixes and tears down large lists and reports how
// long each phase took.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"hop.computer/deque/workload"
)

func main() {
	logrus.SetLevel(logrus.InfoLevel)

	f, err := parseArgs(os.Args)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logrus.Fatal(err)
	}
	if f.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	r := workload.NewRunner(f.Config, logrus.WithField("cmd", "list-stress"))
	res, err := r.Run()
	if err != nil {
		logrus.Fatalf("workload failed: %s", err)
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Fprint(os.Stdout, renderReport(res, styled))
}
