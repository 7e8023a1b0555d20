package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/widecalc/internal/calc"
	"github.com/agbru/widecalc/internal/config"
	"github.com/agbru/widecalc/internal/ui"
)

// PrintExecutionConfig displays the request, the timeout and the runtime
// environment.
//
// Parameters:
//   - cfg: The application configuration.
//   - req: The parsed request.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, req calc.Request, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Calculating %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), describeRequest(req), ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Operands: %s%d%s and %s%d%s digits.\n",
		ui.ColorCyan(), req.A.Len(), ui.ColorReset(), ui.ColorCyan(), req.B.Len(), ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays whether one backend runs or several are
// cross-checked.
//
// Parameters:
//   - calculators: The calculators that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(calculators []calc.Calculator, out io.Writer) {
	var modeDesc string
	if len(calculators) > 1 {
		modeDesc = fmt.Sprintf("Parallel cross-check of %d backends", len(calculators))
	} else if len(calculators) == 1 {
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s backend",
			ui.ColorGreen(), calculators[0].Name(), ui.ColorReset())
	} else {
		modeDesc = "No backend selected"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
