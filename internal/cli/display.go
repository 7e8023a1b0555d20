package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/widecalc/internal/calc"
	"github.com/agbru/widecalc/internal/format"
	"github.com/agbru/widecalc/internal/orchestration"
	"github.com/agbru/widecalc/internal/sysmon"
	"github.com/agbru/widecalc/internal/ui"
	"github.com/agbru/widecalc/internal/wideint"
)

// FormatResultValue returns the decimal value of x, truncated around an
// ellipsis past TruncationLimit digits unless verbose is set.
func FormatResultValue(x wideint.Int, verbose bool) (string, bool) {
	s := x.String()
	if verbose || x.Len() <= TruncationLimit {
		return s, false
	}
	return format.TruncateDigits(s, TruncationLimit, DisplayEdges), true
}

// DisplayResult prints the result of req.
//
// Parameters:
//   - res: The result to display.
//   - req: The request that produced it.
//   - verbose: Print the full value instead of a truncated one.
//   - details: Add digit counts, the transform size and host information.
//   - out: The writer for standard output.
func DisplayResult(res orchestration.CalculationResult, req calc.Request, verbose, details bool, out io.Writer) {
	fmt.Fprintf(out, "\n%s--- Result ---%s\n", ui.ColorBold(), ui.ColorReset())

	value, truncated := FormatResultValue(res.Result, verbose)
	fmt.Fprintf(out, "%s = %s%s%s\n", describeRequest(req), ui.ColorGreen(), value, ui.ColorReset())
	if truncated {
		fmt.Fprintf(out, "(truncated) Tip: use %s-v%s to display the full value.\n", ui.ColorYellow(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Calculation time: %s%s%s\n", ui.ColorCyan(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	fmt.Fprintf(out, "Number of digits: %s%s%s\n", ui.ColorCyan(), format.GroupThousands(res.Result.Len()), ui.ColorReset())

	if !details {
		return
	}
	fmt.Fprintf(out, "\n%sDetailed result analysis%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Backend:          %s\n", res.Name)
	fmt.Fprintf(out, "  Sign:             %s\n", res.Result.Sign())
	fmt.Fprintf(out, "  Operand digits:   %s and %s\n", format.GroupThousands(req.A.Len()), format.GroupThousands(req.B.Len()))
	if req.Op == calc.OpMul {
		n := wideint.TransformLength(req.A, req.B)
		fmt.Fprintf(out, "  Transform length: %s (limit %s)\n", format.GroupThousands(n), format.GroupThousands(wideint.MaxTransformLength))
	}
	DisplayHostInfo(out)
}

// DisplayHostInfo prints the processor and memory figures of the host.
func DisplayHostInfo(out io.Writer) {
	stats := sysmon.Sample()
	features := strings.Join(sysmon.CPUFeatures(), " ")
	if features == "" {
		features = "none detected"
	}
	fmt.Fprintf(out, "  Host:             %d logical CPUs, %s memory, %s/%s\n",
		stats.LogicalCPUs, format.FormatBytes(stats.TotalMemory), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "  Load:             CPU %.1f%%, memory %.1f%%\n", stats.CPUPercent, stats.MemPercent)
	fmt.Fprintf(out, "  CPU features:     %s\n", features)
}

// describeRequest renders the request with truncated operands.
func describeRequest(req calc.Request) string {
	a, _ := FormatResultValue(req.A, false)
	b, _ := FormatResultValue(req.B, false)
	return fmt.Sprintf("%s %s %s", a, req.Op.Symbol(), b)
}
