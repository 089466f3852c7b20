// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"strings"

	"bitslice/internal/imageio"
	"bitslice/internal/version"
)

// Usage installs the help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – zero selected bit planes of a color image\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s -i in.png -o out.png [-p 6 7]\n", name)

		fmt.Fprintln(out, "\nFiles:")
		fmt.Fprintln(out, "  -i, --input path            Input color image")
		fmt.Fprintln(out, "  -o, --output path           Output image (format from extension)")
		fmt.Fprintf(out, "                              Read: %s\n", strings.Join(imageio.Extensions(false), " "))
		fmt.Fprintf(out, "                              Write: %s\n", strings.Join(imageio.Extensions(true), " "))

		fmt.Fprintln(out, "\nTransform:")
		fmt.Fprintln(out, "  -p, --plane int [int ...]   Bit planes to zeroize in every channel (0=MSB, 7=LSB)")

		fmt.Fprintln(out, "\nLogging:")
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "      --log-format string     text | json [%s]\n", def("log-format"))
		fmt.Fprintf(out, "  -q, --quiet                 Only log errors [%s]\n", def("quiet"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --jpeg-quality int      JPEG quality 1-100 [%s]\n", def("jpeg-quality"))
		fmt.Fprintf(out, "      --invalid-exit-code int Exit code when the input is missing or not color [%s]\n", def("invalid-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
