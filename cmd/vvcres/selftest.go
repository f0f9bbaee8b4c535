package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/deepteams/vvc/internal/cabac"
)

type selftestOp struct {
	kind int // 0 context, 1 bypass, 2 remainder
	ctx  int
	v    uint32
	rice uint
}

// runSelftest codes random bins with the encoder and checks the decoder
// reproduces them and ends on the terminating bin.
func runSelftest(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("selftest", flag.ContinueOnError)
	seed := fs.Int64("seed", 1, "random seed")
	n := fs.Int("n", 100000, "number of symbols")
	numCtx := fs.Int("ctx", 16, "number of contexts")
	qp := fs.Int("qp", 32, "QP used to seed the contexts")
	output := fs.String("o", "", "write the coded entry to this file")
	compress := fs.Bool("zstd", false, "compress the -o file with zstd")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 0 || *numCtx < 1 {
		return errors.Errorf("selftest: bad -n %d or -ctx %d", *n, *numCtx)
	}

	rng := rand.New(rand.NewSource(*seed))
	inits := make([]cabac.InitValue, *numCtx)
	for i := range inits {
		inits[i] = cabac.InitValue{Value: uint8(rng.Intn(64)), Shift: uint8(rng.Intn(14))}
	}
	ops := make([]selftestOp, *n)
	for i := range ops {
		op := selftestOp{kind: rng.Intn(3)}
		switch op.kind {
		case 0:
			op.ctx = rng.Intn(*numCtx)
			if rng.Intn(5) != 0 {
				op.v = uint32(op.ctx & 1)
			} else {
				op.v = uint32(rng.Intn(2))
			}
		case 1:
			op.v = uint32(rng.Intn(2))
		case 2:
			op.rice = uint(rng.Intn(4))
			op.v = uint32(rng.Intn(200))
		}
		ops[i] = op
	}

	encCtx := make([]cabac.Context, *numCtx)
	cabac.InitContexts(encCtx, inits, *qp)
	enc := cabac.NewEncoder()
	for _, op := range ops {
		switch op.kind {
		case 0:
			enc.EncodeBin(int(op.v), &encCtx[op.ctx])
		case 1:
			enc.EncodeBypass(int(op.v))
		case 2:
			enc.EncodeRemAbs(op.v, op.rice)
		}
	}
	data := enc.Close()

	decCtx := make([]cabac.Context, *numCtx)
	cabac.InitContexts(decCtx, inits, *qp)
	eng := cabac.NewEngine(data)
	for i, op := range ops {
		var got uint32
		switch op.kind {
		case 0:
			got = uint32(eng.DecodeBin(&decCtx[op.ctx]))
		case 1:
			got = uint32(eng.DecodeBypass())
		case 2:
			got = eng.DecodeRemAbs(op.rice)
		}
		if got != op.v {
			return errors.Errorf("selftest: symbol %d (kind %d) decoded %d, want %d", i, op.kind, got, op.v)
		}
	}
	if eng.DecodeTerminate() != 1 {
		return errors.New("selftest: terminating bin missing")
	}
	if eng.Overrun() {
		return errors.New("selftest: decoder read past the coded data")
	}
	if *output != "" {
		if err := writeOutput(*output, data, *compress); err != nil {
			return errors.Wrap(err, "selftest")
		}
	}
	fmt.Fprintf(w, "ok: %d symbols in %d bytes (%.3f bits/symbol)\n",
		len(ops), len(data), float64(8*len(data))/float64(max(len(ops), 1)))
	return nil
}
