package vvc_test

import (
	"fmt"

	"github.com/deepteams/vvc"
	"github.com/deepteams/vvc/internal/cabac"
	"github.com/deepteams/vvc/internal/residual"
)

func ExampleEntry_DecodeResidual() {
	cfg := vvc.DefaultSliceConfig()

	// Build a slice holding one 4x4 luma block with a single DC level of -1.
	var ctx residual.Contexts
	ctx.Init(int(cfg.InitType), cfg.QP)
	enc := cabac.NewEncoder()
	enc.EncodeBin(0, &ctx.LastX[0])
	enc.EncodeBin(0, &ctx.LastY[0])
	enc.EncodeBin(0, &ctx.Gtx[0])
	enc.EncodeBypass(1)
	data := enc.Close()

	entry, err := vvc.NewEntry(data, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	coeffs := make([]int16, 16)
	res, err := entry.DecodeResidual(&vvc.TransformBlock{
		Log2Width:  2,
		Log2Height: 2,
		LastPos:    vvc.LastPosUnset,
	}, coeffs)
	if err != nil {
		fmt.Println(err)
		return
	}
	end, _ := entry.DecodeTerminate()
	fmt.Println(coeffs[:4], res.NumSig, end)
	// Output: [-816 0 0 0] 1 true
}
