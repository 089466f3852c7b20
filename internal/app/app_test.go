package app

import (
	"bytes"
	"strings"
	"testing"

	"bitslice/internal/version"
)

func TestNoArgsPrintsUsage(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run(nil, &out, &errBuf); code != ExitOK {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), "--plane") {
		t.Fatalf("usage not printed: %q", out.String())
	}
}

func TestHelp(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--help"}, &out, &errBuf); code != ExitOK {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), "bitslice") {
		t.Fatalf("usage not printed: %q", out.String())
	}
}

func TestVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"-v"}, &out, &errBuf); code != ExitOK {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), version.Version) {
		t.Fatalf("version output %q", out.String())
	}
}

func TestBadFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := Run([]string{"--nope"}, &out, &errBuf); code != ExitUsage {
		t.Fatalf("exit %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(errBuf.String(), "error:") {
		t.Fatalf("stderr %q", errBuf.String())
	}
}

func TestPlaneOutOfRangeIsUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"-i", "a.png", "-o", "b.png", "-p", "9"}, &out, &errBuf)
	if code != ExitUsage {
		t.Fatalf("exit %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(errBuf.String(), "out of range") {
		t.Fatalf("stderr %q", errBuf.String())
	}
}
