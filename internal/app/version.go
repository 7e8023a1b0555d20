// Package app wires configuration, backends and the presentation layers
// into the widecalc command.
package app

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/widecalc/internal/sysmon"
)

// Build-time variables set via -ldflags:
//
//	go build -ldflags="-X github.com/agbru/widecalc/internal/app.Version=v1.2.3 -X github.com/agbru/widecalc/internal/app.Commit=abc123"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether any argument asks for the version, so that
// --version works in any position.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version, build and host information.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "widecalc %s\n", Version)
	fmt.Fprintf(out, "  Commit:       %s\n", Commit)
	fmt.Fprintf(out, "  Built:        %s\n", BuildDate)
	fmt.Fprintf(out, "  Go version:   %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
	features := sysmon.CPUFeatures()
	if len(features) == 0 {
		features = []string{"none detected"}
	}
	fmt.Fprintf(out, "  CPU features: %s\n", strings.Join(features, " "))
}
