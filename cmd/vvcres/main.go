// Command vvcres decodes VVC residual coefficients from raw CABAC entry
// data and inspects the tables behind them.
//
// Usage:
//
//	vvcres dec [options] <entry.bin>   Decode transform blocks (use "-" for stdin)
//	vvcres scan -w 3 -h 2              Print the scan order of a block size
//	vvcres info                        Report CPU features and kernels
//	vvcres selftest [options]          Round-trip random bins through the coder
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "dec":
		err = runDec(os.Args[2:], os.Stdout)
	case "scan":
		err = runScan(os.Args[2:], os.Stdout)
	case "info":
		err = runInfo(os.Args[2:], os.Stdout)
	case "selftest":
		err = runSelftest(os.Args[2:], os.Stdout)
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "vvcres: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "vvcres: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  vvcres dec [options] <entry.bin>   Decode transform block residuals
  vvcres scan [options]              Print scan order and sub-block layout
  vvcres info                        Report CPU features and kernels
  vvcres selftest [options]          Round-trip random bins through the coder

Use "-" as input to read from stdin.

Run "vvcres <command> -h" for command-specific options.
`)
}

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// readInput reads the whole entry from path, or stdin when path is "-".
// Zstandard-compressed dumps are unpacked transparently.
func readInput(path string) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		err = errors.Wrap(err, "read stdin")
	} else {
		data, err = os.ReadFile(path)
		err = errors.Wrapf(err, "read %s", path)
	}
	if err != nil || !bytes.HasPrefix(data, zstdMagic) {
		return data, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(err, "zstd")
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	return out, errors.Wrapf(err, "zstd decode %s", path)
}

// writeOutput writes data to path, compressing it when compress is set.
func writeOutput(path string, data []byte, compress bool) error {
	if compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return errors.Wrap(err, "zstd")
		}
		data = enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "zstd")
		}
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}
