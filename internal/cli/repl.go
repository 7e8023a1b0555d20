package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/agbru/widecalc/internal/calc"
	"github.com/agbru/widecalc/internal/format"
	"github.com/agbru/widecalc/internal/orchestration"
	"github.com/agbru/widecalc/internal/ui"
	"github.com/agbru/widecalc/internal/wideint"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultBackend is the backend used for calculations.
	DefaultBackend string
	// Timeout is the maximum duration for each calculation.
	Timeout time.Duration
	// Verbose prints full results instead of truncated ones.
	Verbose bool
}

// REPL is an interactive calculator session. The last result is kept and
// can be reused as the operand "ans".
type REPL struct {
	config         REPLConfig
	factory        calc.CalculatorFactory
	currentBackend string
	last           wideint.Int
	in             io.Reader
	out            io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - factory: The backends available to the session.
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(factory calc.CalculatorFactory, config REPLConfig) *REPL {
	current := config.DefaultBackend
	if current == "" || current == orchestration.AllBackends {
		current = "fft"
		if names := factory.List(); len(names) > 0 && !slices.Contains(names, current) {
			current = names[0]
		}
	}
	return &REPL{
		config:         config,
		factory:        factory,
		currentBackend: current,
		in:             os.Stdin,
		out:            os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start runs the session until the user exits or the input ends.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"wide> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && strings.TrimSpace(input) != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintln(r.out, ui.Banner("widecalc - Interactive Mode",
		"Arbitrary-precision integers with FFT multiplication",
		fmt.Sprintf("Backend: %s", r.currentBackend)))
	fmt.Fprintln(r.out)
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<op> <a> <b>%s     - Run an operation (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(calc.OpNames(), ", "))
	fmt.Fprintf(r.out, "  %s<a> <sym> <b>%s    - Same with a symbol, e.g. 12 * 34\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scompare <op> <a> <b>%s - Run on every backend and cross-check\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbackend <name>%s   - Change backend (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(r.factory.List(), ", "))
	fmt.Fprintf(r.out, "  %slist%s             - List available backends\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sverbose%s          - Toggle full result display\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s           - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s             - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s      - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "Operands may be %sans%s, the previous result.\n", ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "backend", "b":
		r.cmdBackend(args)
	case "compare":
		r.cmdCompare(args)
	case "list", "ls":
		r.cmdList()
	case "verbose":
		r.config.Verbose = !r.config.Verbose
		fmt.Fprintf(r.out, "Full result display: %s%v%s\n", ui.ColorGreen(), r.config.Verbose, ui.ColorReset())
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		req, err := r.parseRequest(parts)
		if err != nil {
			fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
			return true
		}
		r.calculate(req)
	}

	return true
}

// parseRequest accepts "op a b" and "a sym b".
func (r *REPL) parseRequest(parts []string) (calc.Request, error) {
	if len(parts) != 3 {
		return calc.Request{}, fmt.Errorf("unknown command: %s", strings.Join(parts, " "))
	}
	opToken, aToken, bToken := parts[0], parts[1], parts[2]
	op, err := calc.ParseOp(opToken)
	if err != nil {
		if op, err = calc.ParseOp(parts[1]); err != nil {
			return calc.Request{}, fmt.Errorf("unknown command: %s", parts[0])
		}
		aToken = parts[0]
	}
	a, err := r.operand(aToken)
	if err != nil {
		return calc.Request{}, err
	}
	b, err := r.operand(bToken)
	if err != nil {
		return calc.Request{}, err
	}
	return calc.Request{Op: op, A: a, B: b}, nil
}

func (r *REPL) operand(token string) (wideint.Int, error) {
	if strings.EqualFold(token, "ans") {
		return r.last, nil
	}
	x, err := wideint.Parse(token)
	if err != nil {
		return wideint.Int{}, fmt.Errorf("invalid operand: %s", token)
	}
	return x, nil
}

// calculate runs req on the current backend with a progress spinner.
func (r *REPL) calculate(req calc.Request) {
	calculator, err := r.factory.Get(r.currentBackend)
	if err != nil {
		fmt.Fprintf(r.out, "%sBackend not found: %s%s\n", ui.ColorRed(), r.currentBackend, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	progressChan := make(chan calc.ProgressUpdate, orchestration.ProgressBufferMultiplier)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	start := time.Now()
	result, err := calculator.Calculate(ctx, progressChan, 0, req)
	duration := time.Since(start)
	close(progressChan)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	r.last = result

	value, truncated := FormatResultValue(result, r.config.Verbose)
	fmt.Fprintf(r.out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Time:   %s%s%s\n", ui.ColorGreen(), format.FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(r.out, "  Digits: %s%d%s\n", ui.ColorCyan(), result.Len(), ui.ColorReset())
	suffix := ""
	if truncated {
		suffix = " (truncated)"
	}
	fmt.Fprintf(r.out, "  %s = %s%s%s%s\n", describeRequest(req), ui.ColorGreen(), value, ui.ColorReset(), suffix)
	fmt.Fprintln(r.out)
}

// cmdBackend handles the "backend" command.
func (r *REPL) cmdBackend(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: backend <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available backends: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}

	name := strings.ToLower(args[0])
	if _, err := r.factory.Get(name); err != nil {
		fmt.Fprintf(r.out, "%sUnknown backend: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available backends: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}

	r.currentBackend = name
	fmt.Fprintf(r.out, "Backend changed to: %s%s%s\n", ui.ColorGreen(), name, ui.ColorReset())
}

// cmdCompare runs a request on every backend and reports whether they agree.
func (r *REPL) cmdCompare(args []string) {
	req, err := r.parseRequest(args)
	if err != nil {
		fmt.Fprintf(r.out, "%sUsage: compare <op> <a> <b>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	calculators, err := orchestration.GetCalculatorsToRun(orchestration.AllBackends, r.factory)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()
	results := orchestration.ExecuteCalculations(ctx, calculators, req, orchestration.NullProgressReporter{}, io.Discard)

	fmt.Fprintf(r.out, "\n%sComparison for %s:%s\n", ui.ColorBold(), describeRequest(req), ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	best, consistent, bestErr := orchestration.FirstSuccess(results)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(r.out, "  %s%-10s%s: %sError - %v%s\n",
				ui.ColorYellow(), res.Name, ui.ColorReset(), ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}
		status := ui.ColorGreen() + "✓" + ui.ColorReset()
		if !res.Result.Equal(best.Result) {
			status = ui.ColorRed() + "✗ INCONSISTENT" + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-10s%s: %s%12s%s %s\n",
			ui.ColorYellow(), res.Name, ui.ColorReset(),
			ui.ColorCyan(), format.FormatExecutionDuration(res.Duration), ui.ColorReset(),
			status)
	}
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	if bestErr == nil && consistent {
		r.last = best.Result
		value, _ := FormatResultValue(best.Result, r.config.Verbose)
		fmt.Fprintf(r.out, "  = %s%s%s\n", ui.ColorGreen(), value, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdList handles the "list" command.
func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable backends:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.factory.List() {
		marker := "  "
		if name == r.currentBackend {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%s%s\n", marker, ui.ColorYellow(), name, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Backend:      %s%s%s\n", ui.ColorCyan(), r.currentBackend, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:      %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Full display: %s%v%s\n", ui.ColorCyan(), r.config.Verbose, ui.ColorReset())
	fmt.Fprintf(r.out, "  ans digits:   %s%d%s\n", ui.ColorCyan(), r.last.Len(), ui.ColorReset())
	fmt.Fprintln(r.out)
}
