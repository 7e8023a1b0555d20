// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatResultValue].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/widecalc/internal/calc"
	"github.com/agbru/widecalc/internal/orchestration"
	"github.com/agbru/widecalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode prints the bare result.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
	// JSON prints a ResultDocument instead of text.
	JSON bool
}

// ResultDocument is the JSON form of a result, shared with the HTTP server.
type ResultDocument struct {
	Op         string `json:"op"`
	A          string `json:"a"`
	B          string `json:"b"`
	Result     string `json:"result"`
	Digits     int    `json:"digits"`
	Backend    string `json:"backend"`
	DurationNs int64  `json:"duration_ns"`
	Duration   string `json:"duration"`
}

// NewResultDocument builds the JSON form of res.
func NewResultDocument(req calc.Request, res orchestration.CalculationResult) ResultDocument {
	return ResultDocument{
		Op:         req.Op.String(),
		A:          req.A.String(),
		B:          req.B.String(),
		Result:     res.Result.String(),
		Digits:     res.Result.Len(),
		Backend:    res.Name,
		DurationNs: res.Duration.Nanoseconds(),
		Duration:   res.Duration.String(),
	}
}

// WriteResultToFile writes a result with a commented header to
// cfg.OutputFile, creating parent directories. It does nothing when no file
// is configured.
//
// Parameters:
//   - req: The request that produced the result.
//   - res: The result to write.
//   - cfg: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(req calc.Request, res orchestration.CalculationResult, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# widecalc result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Backend: %s\n", res.Name)
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	fmt.Fprintf(file, "# Operation: %s\n", req.Op)
	fmt.Fprintf(file, "# Digits: %d\n", res.Result.Len())
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "%s\n", res.Result)

	return file.Close()
}

// FormatQuietResult formats a result for quiet mode: the bare decimal value.
func FormatQuietResult(res orchestration.CalculationResult) string {
	return res.Result.String()
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, res orchestration.CalculationResult) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayJSONResult writes res as an indented ResultDocument.
func DisplayJSONResult(out io.Writer, req calc.Request, res orchestration.CalculationResult) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(NewResultDocument(req, res))
}

// DisplayResultWithConfig displays a result according to cfg and saves it
// when an output file is configured.
//
// Returns:
//   - error: An error if encoding or file output fails.
func DisplayResultWithConfig(out io.Writer, req calc.Request, res orchestration.CalculationResult, cfg OutputConfig) error {
	switch {
	case cfg.JSON:
		if err := DisplayJSONResult(out, req, res); err != nil {
			return err
		}
	case cfg.Quiet:
		DisplayQuietResult(out, res)
	default:
		DisplayResult(res, req, cfg.Verbose, false, out)
	}

	if cfg.OutputFile != "" {
		if err := WriteResultToFile(req, res, cfg); err != nil {
			return err
		}
		if !cfg.Quiet && !cfg.JSON {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
