// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"bitslice/internal/bitplane"
	"bitslice/internal/cliutil"
	"bitslice/internal/cmdutil"
	"bitslice/internal/imageio"
)

// Options holds all CLI flags.
type Options struct {
	// Files
	Input  string
	Output string

	// Transform
	Planes    bitplane.PlaneSet
	PlaneArgs []string // raw -p tokens, kept for the debug dump

	// Logging
	LogLevel  string
	LogFormat string
	Quiet     bool

	// Encoding / exit behavior
	JPEGQuality     int
	InvalidExitCode int

	Version bool
}

// Log returns the logger settings carried by o.
func (o Options) Log() cmdutil.LogOptions {
	return cmdutil.LogOptions{Level: o.LogLevel, Format: o.LogFormat, Quiet: o.Quiet}
}

func (o Options) String() string {
	return fmt.Sprintf("Options(input=%q, output=%q, plane=%v, log_level=%s, log_format=%s, quiet=%t, jpeg_quality=%d)",
		o.Input, o.Output, o.PlaneArgs, o.LogLevel, o.LogFormat, o.Quiet, o.JPEGQuality)
}

// NewFlagSet returns a ContinueOnError FlagSet with the bitslice usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	Usage(fs, name)
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// flag.ErrHelp is returned after printing usage for -h/--help.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Files
	fs.StringVar(&opt.Input, "input", "", "input image path")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Output, "output", "", "output image path")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")

	// Transform
	var planes stringSlice
	fs.Var(&planes, "plane", "bit plane(s) to zeroize, 0=MSB..7=LSB (space separated)")
	fs.Var(&planes, "p", "alias of --plane")

	// Logging
	fs.StringVar(&opt.LogLevel, "log-level", cmdutil.LevelDebug, "log level: debug | info | warn | error [debug]")
	fs.StringVar(&opt.LogFormat, "log-format", cmdutil.FormatText, "log format: text | json [text]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")

	// Encoding / exit
	fs.IntVar(&opt.JPEGQuality, "jpeg-quality", imageio.DefaultJPEGQuality, "JPEG output quality 1-100 [95]")
	fs.IntVar(&opt.InvalidExitCode, "invalid-exit-code", 0, "exit code when the input is missing or not color [0]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	if err := fs.Parse(cliutil.ExpandMultiValue(argv, "p", "plane")); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	opt.PlaneArgs = planes
	ps, err := bitplane.ParsePlanes(planes)
	if err != nil {
		return opt, fmt.Errorf("--plane: %w", err)
	}
	opt.Planes = ps

	return opt, Validate(opt)
}

// Validate applies the CLI invariants that do not depend on the filesystem.
// A missing --input is deliberately not an error here: the load step reports it.
func Validate(o Options) error {
	if _, err := cmdutil.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	switch o.LogFormat {
	case cmdutil.FormatText, cmdutil.FormatJSON:
	default:
		return fmt.Errorf("invalid --log-format %q", o.LogFormat)
	}
	if o.JPEGQuality < 1 || o.JPEGQuality > 100 {
		return errors.New("--jpeg-quality must be between 1 and 100")
	}
	if o.InvalidExitCode < 0 || o.InvalidExitCode > 255 {
		return errors.New("--invalid-exit-code must be between 0 and 255")
	}
	return nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, " ") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
