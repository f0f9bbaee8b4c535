package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deepteams/vvc"
	"github.com/deepteams/vvc/internal/cabac"
	"github.com/deepteams/vvc/internal/residual"
)

func TestScan4x4(t *testing.T) {
	var buf bytes.Buffer
	if err := runScan([]string{"-w", "2", "-h", "2"}, &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "4x4 sub-blocks") {
		t.Errorf("header = %q", lines[0])
	}
	if got := strings.Fields(lines[1]); strings.Join(got, " ") != "0 2 5 9" {
		t.Errorf("first row = %v, want [0 2 5 9]", got)
	}
}

func TestScanInvalid(t *testing.T) {
	if err := runScan([]string{"-w", "0", "-h", "0"}, new(bytes.Buffer)); err == nil {
		t.Error("expected error for 1x1")
	}
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	if err := runInfo(nil, &buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Architecture:", "Dequant:", "Contexts:"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, buf.String())
		}
	}
}

func TestSelftest(t *testing.T) {
	var buf bytes.Buffer
	if err := runSelftest([]string{"-n", "5000", "-seed", "9"}, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "ok:") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDecFile(t *testing.T) {
	cfg := vvc.DefaultSliceConfig()
	var ctx residual.Contexts
	ctx.Init(int(cfg.InitType), cfg.QP)
	enc := cabac.NewEncoder()
	enc.EncodeBin(0, &ctx.LastX[0])
	enc.EncodeBin(0, &ctx.LastY[0])
	enc.EncodeBin(0, &ctx.Gtx[0])
	enc.EncodeBypass(0)
	path := filepath.Join(t.TempDir(), "entry.bin")
	if err := os.WriteFile(path, enc.Close(), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runDec([]string{"-end", path}, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"block 0: Y 4x4, 1 significant, last (0,0)", "816", "end_of_slice_segment_flag: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestReadInputZstd(t *testing.T) {
	dir := t.TempDir()
	want := []byte{0x12, 0x34, 0x56, 0x78, 0x9a}
	path := filepath.Join(dir, "entry.bin.zst")
	if err := writeOutput(path, want, true); err != nil {
		t.Fatal(err)
	}
	got, err := readInput(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("readInput = %x, want %x", got, want)
	}
}

func TestSelftestOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entry.zst")
	if err := runSelftest([]string{"-n", "200", "-o", path, "-zstd"}, new(bytes.Buffer)); err != nil {
		t.Fatal(err)
	}
	data, err := readInput(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("empty entry written")
	}
}

func TestDecBadFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entry.bin")
	if err := os.WriteFile(path, []byte{0, 0, 0, 0}, 0o644); err != nil {
		t.Fatal(err)
	}
	tests := [][]string{
		{"-w", "-1", path},
		{"-h", "-3", path},
		{"-w", "7", path},
		{"-w", "64", path},
		{},
		{"-c", "k", "x.bin"},
		{"-bdpcm", "d", "x.bin"},
	}
	for _, args := range tests {
		if err := runDec(args, new(bytes.Buffer)); err == nil {
			t.Errorf("runDec(%v) = nil, want error", args)
		}
	}
}
