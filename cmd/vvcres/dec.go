package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/deepteams/vvc"
	"github.com/deepteams/vvc/internal/pool"
)

func runDec(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("dec", flag.ContinueOnError)
	log2W := fs.Int("w", 2, "log2 of the transform width (0-6)")
	log2H := fs.Int("h", 2, "log2 of the transform height (0-6)")
	comp := fs.String("c", "y", "component: y/cb/cr")
	qp := fs.Int("qp", 32, "slice QP 0-63")
	depth := fs.Int("depth", 10, "sample bit depth 8-16")
	initType := fs.Int("init", 0, "context init type: 0=I 1=P 2=B")
	dq := fs.Bool("dq", false, "dependent quantisation")
	sdh := fs.Bool("sdh", true, "sign data hiding (ignored with -dq)")
	ts := fs.Bool("ts", false, "transform skip")
	bdpcm := fs.String("bdpcm", "none", "BDPCM direction for -ts: none/h/v")
	sbt := fs.Bool("sbt", false, "sub-block transform zero-out")
	last := fs.String("last", "", `last significant position "x,y" (default: parse it)`)
	count := fs.Int("n", 1, "number of consecutive blocks to decode")
	skip := fs.Int("skip", 0, "bytes to skip before the entry starts")
	end := fs.Bool("end", false, "read end_of_slice_segment_flag after the blocks")
	quiet := fs.Bool("quiet", false, "print only the block summaries")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("dec: missing input file\nUsage: vvcres dec [options] <entry.bin>")
	}
	data, err := readInput(fs.Arg(0))
	if err != nil {
		return err
	}
	if *skip < 0 || *skip > len(data) {
		return errors.Errorf("dec: skip %d outside %d-byte input", *skip, len(data))
	}

	cfg := vvc.DefaultSliceConfig()
	cfg.QP = *qp
	cfg.BitDepth = *depth
	cfg.InitType = vvc.InitType(*initType)
	cfg.DepQuant = *dq
	cfg.SignHiding = *sdh && !*dq

	tb := vvc.TransformBlock{
		Log2Width:     *log2W,
		Log2Height:    *log2H,
		TransformSkip: *ts,
		SBTZeroOut:    *sbt,
		LastPos:       vvc.LastPosUnset,
	}
	if tb.Component, err = parseComponent(*comp); err != nil {
		return err
	}
	switch strings.ToLower(*bdpcm) {
	case "none":
	case "h":
		tb.BDPCM = true
	case "v":
		tb.BDPCM, tb.BDPCMVertical = true, true
	default:
		return errors.Errorf("dec: unknown bdpcm %q (use none/h/v)", *bdpcm)
	}
	if *last != "" {
		var x, y int
		if _, err := fmt.Sscanf(*last, "%d,%d", &x, &y); err != nil {
			return errors.Wrapf(err, "dec: bad -last %q", *last)
		}
		tb.LastPos = vvc.Pos(x, y)
	}

	entry, err := vvc.NewEntry(data[*skip:], cfg)
	if err != nil {
		return errors.Wrap(err, "dec")
	}
	if *log2W < 0 || *log2H < 0 || *log2W > 6 || *log2H > 6 {
		return errors.Wrapf(vvc.ErrInvalidBlockSize, "dec: log2 size %dx%d (must be 0-6)", *log2W, *log2H)
	}
	width, height := 1<<*log2W, 1<<*log2H
	coeffs := pool.GetInt16(width * height)
	defer pool.PutInt16(coeffs)

	for i := 0; i < *count; i++ {
		res, err := entry.DecodeResidual(&tb, coeffs)
		if err != nil && errors.Cause(err) != vvc.ErrBitstreamExhausted {
			return errors.Wrapf(err, "dec: block %d", i)
		}
		fmt.Fprintf(w, "block %d: %s %dx%d, %d significant", i, tb.Component, width, height, res.NumSig)
		if !tb.TransformSkip {
			fmt.Fprintf(w, ", last (%d,%d)", res.LastPos.X(), res.LastPos.Y())
		}
		fmt.Fprintf(w, ", sub-blocks %#x, %d bytes used\n", res.SigMap, entry.BytesUsed())
		if !*quiet {
			printCoeffs(w, coeffs, width, height)
		}
		if err != nil {
			return errors.Wrapf(err, "dec: block %d", i)
		}
	}
	if *end {
		set, err := entry.DecodeTerminate()
		if err != nil {
			return errors.Wrap(err, "dec")
		}
		fmt.Fprintf(w, "end_of_slice_segment_flag: %v\n", set)
	}
	return nil
}

func parseComponent(s string) (vvc.Component, error) {
	switch strings.ToLower(s) {
	case "y", "luma":
		return vvc.Y, nil
	case "cb", "u":
		return vvc.Cb, nil
	case "cr", "v":
		return vvc.Cr, nil
	}
	return 0, errors.Errorf("dec: unknown component %q (use y/cb/cr)", s)
}

func printCoeffs(w io.Writer, coeffs []int16, width, height int) {
	for y := 0; y < height; y++ {
		row := coeffs[y*width : (y+1)*width]
		var sb strings.Builder
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%6d", v)
		}
		fmt.Fprintln(w, sb.String())
	}
}
