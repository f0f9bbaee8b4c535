package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/deepteams/vvc/internal/scan"
)

func runScan(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	log2W := fs.Int("w", 2, "log2 of the coded width (0-5)")
	log2H := fs.Int("h", 2, "log2 of the coded height (0-5)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	g := scan.Select(*log2W, *log2H)
	if g == nil {
		return errors.Errorf("scan: no sub-block layout for log2 size %dx%d", *log2W, *log2H)
	}
	width, height := 1<<g.Log2W, 1<<g.Log2H
	fmt.Fprintf(w, "block %dx%d: %s sub-blocks, grid %dx%d, %d coefficients each\n",
		width, height, g.Shape, 1<<g.Log2GridW, 1<<g.Log2GridH, g.NumCoeff)

	// Global scan index of every coefficient: sub-block index * NumCoeff +
	// position inside the sub-block.
	order := make([]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sb, pos := g.Locate(x, y)
			order[y*width+x] = sb*g.NumCoeff + pos
		}
	}
	for y := 0; y < height; y++ {
		var sb strings.Builder
		for x := 0; x < width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%4d", order[y*width+x])
		}
		fmt.Fprintln(w, sb.String())
	}
	return nil
}
