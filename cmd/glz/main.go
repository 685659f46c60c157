// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

// Command glz compresses and decompresses files with the GLZ block format.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/spf13/pflag"

	"github.com/etemesi254/glz"
)

var (
	flagLevel  = pflag.IntP("level", "l", 5, "compression level, 1 (fastest) to 9 (smallest)")
	flagForce  = pflag.BoolP("force", "f", false, "overwrite the output file if it already exists")
	flagStdout = pflag.BoolP("stdout", "c", false, "write to stdout instead of a file")
	flagHelp   = pflag.BoolP("help", "h", false, "show this help message")
)

func usage(logger log.Logger) {
	fmt.Fprintln(os.Stderr, "usage: glz c|d [flags] <input> [output]")
	pflag.PrintDefaults()
}

func main() {
	pflag.Parse()
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if *flagHelp || pflag.NArg() < 1 {
		usage(logger)
		if *flagHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	mode := pflag.Arg(0)
	switch mode {
	case "c", "d":
	default:
		level.Error(logger).Log("msg", "unknown mode", "mode", mode)
		os.Exit(2)
	}

	if pflag.NArg() < 2 {
		level.Error(logger).Log("msg", "missing input file")
		os.Exit(2)
	}
	inPath := pflag.Arg(1)

	in, err := os.Open(inPath)
	if err != nil {
		level.Error(logger).Log("msg", "open input", "err", err)
		os.Exit(1)
	}
	defer in.Close()

	var out io.Writer
	var outFile *os.File
	switch {
	case *flagStdout:
		out = os.Stdout
	case pflag.NArg() >= 3:
		outPath := pflag.Arg(2)
		if !*flagForce {
			if _, err := os.Stat(outPath); err == nil {
				level.Error(logger).Log("msg", "output exists, use -f to overwrite", "path", outPath)
				os.Exit(1)
			}
		}
		outFile, err = os.Create(outPath)
		if err != nil {
			level.Error(logger).Log("msg", "create output", "err", err)
			os.Exit(1)
		}
		defer outFile.Close()
		out = outFile
	default:
		out = os.Stdout
	}

	start := time.Now()
	var opErr error
	switch mode {
	case "c":
		opErr = glz.EncodeStream(out, in, glz.OptionsForLevel(*flagLevel))
	case "d":
		opErr = glz.DecodeStream(out, in, glz.DefaultDecoderOptions())
	}
	if opErr != nil {
		level.Error(logger).Log("msg", "operation failed", "mode", mode, "err", opErr)
		os.Exit(1)
	}

	inInfo, _ := in.Stat()
	var outSize int64
	if outFile != nil {
		if st, err := outFile.Stat(); err == nil {
			outSize = st.Size()
		}
	}

	level.Info(logger).Log(
		"msg", "done",
		"mode", mode,
		"in_bytes", inInfo.Size(),
		"out_bytes", outSize,
		"elapsed", time.Since(start),
	)
}
