package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/deepteams/vvc/internal/dsp"
	"github.com/deepteams/vvc/internal/residual"
)

func runInfo(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	fmt.Fprintf(w, "Architecture:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
	for _, f := range dsp.Features() {
		fmt.Fprintf(w, "  %-8s %v\n", f.Name+":", f.Present)
	}
	fmt.Fprintf(w, "Dequant:       %s\n", dsp.Kernel())
	var ctx residual.Contexts
	fmt.Fprintf(w, "Contexts:      %d residual contexts, %d init types\n", ctx.Count(), residual.NumInitTypes)
	return nil
}
