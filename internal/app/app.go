// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"bitslice/internal/cli"
	"bitslice/internal/cmdutil"
	"bitslice/internal/imageio"
	"bitslice/internal/version"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitUsage = 2
	ExitIO    = 3
)

// usage prints help to stdout and returns code, or ExitIO if stdout fails.
func usage(fs *flag.FlagSet, stdout, stderr io.Writer, code int) int {
	outw := bufio.NewWriter(stdout)
	fs.SetOutput(outw)
	fs.Usage()
	if e := outw.Flush(); cmdutil.IsBrokenPipe(e) {
		return code
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitIO
	}
	return code
}

// Run parses argv, loads the input image, zeroizes the requested bit planes
// and writes the output image. Logs go to stderr.
//
// An unreadable or non-color input is logged at error level and produces no
// output; the exit code is then --invalid-exit-code (0 unless set).
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("bitslice")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, nil)
		return usage(fs, stdout, stderr, ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(fs, stdout, stderr, ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprintln(stderr, "run with --help for usage")
		return ExitUsage
	}

	if opts.Version {
		if _, e := fmt.Fprintf(stdout, "bitslice version %s\n", version.Version); e != nil && !cmdutil.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return ExitIO
		}
		return ExitOK
	}

	log, err := cmdutil.NewLogger(stderr, opts.Log())
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	log.Debug("parsed arguments", "args", opts.String())

	log.Debug("reading image", "path", opts.Input)
	img, format, err := imageio.Load(opts.Input)
	if err != nil {
		log.Error("image was either not read in correctly or is not color", "path", opts.Input, "err", err)
		return opts.InvalidExitCode
	}
	log.Debug("decoded image", "format", format)

	out, err := cmdutil.RunTransform(log, img, opts.Planes)
	if err != nil {
		log.Error("transform failed", "err", err)
		return ExitUsage
	}

	log.Debug("saving image", "path", opts.Output)
	if err := imageio.Save(opts.Output, out, imageio.SaveOptions{JPEGQuality: opts.JPEGQuality}); err != nil {
		log.Error("write failed", "path", opts.Output, "err", err)
		return ExitIO
	}
	return ExitOK
}
