package appshell

import (
	"io"
	"os"
)

// Main runs run with the process arguments and standard streams, then exits
// with its code. An empty argument list is treated as -h.
func Main(run func([]string, io.Writer, io.Writer) int) {
	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	os.Exit(run(argv, os.Stdout, os.Stderr))
}
