package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/widecalc/internal/calc"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so adding a flag only requires
// appending to it.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsBackend bool     // true if values come from the backend list
	IsOp      bool     // true if values come from the operation list
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "op", Help: "Operation", IsOp: true, ValueName: "operation"},
	{Short: "a", Help: "First operand", ValueName: "integer"},
	{Short: "b", Help: "Second operand", ValueName: "integer"},
	{Long: "backend", Help: "Backend to use", IsBackend: true, ValueName: "backend"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Long: "verbose", Short: "v", Help: "Display the full result value"},
	{Long: "details", Short: "d", Help: "Show result and host details"},
	{Long: "quiet", Short: "q", Help: "Print only the result"},
	{Long: "json", Help: "Print the result as JSON"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "interactive", Short: "i", Help: "Start the interactive REPL"},
	{Long: "tui", Help: "Run in the terminal dashboard"},
	{Long: "server", Help: "Start the HTTP server"},
	{Long: "port", Help: "HTTP server port", Values: []string{"8080", "9090"}, ValueName: "port"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - backends: The registered backend names.
//
// Returns:
//   - error: An error if the shell is not supported or the write fails.
func GenerateCompletion(out io.Writer, shell string, backends []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(backends)
	case "zsh":
		script = zshCompletion(backends)
	case "fish":
		script = fishCompletion(backends)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// flagValues returns the completion candidates of f.
func flagValues(f FlagCompletion, backends []string) []string {
	switch {
	case f.IsBackend:
		return append([]string{"all"}, backends...)
	case f.IsOp:
		return calc.OpNames()
	default:
		return f.Values
	}
}

// flagSpellings returns the single-dash spellings accepted by the flag package.
func flagSpellings(f FlagCompletion) []string {
	var out []string
	if f.Long != "" {
		out = append(out, "-"+f.Long, "--"+f.Long)
	}
	if f.Short != "" {
		out = append(out, "-"+f.Short)
	}
	return out
}

func bashCompletion(backends []string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		spellings := flagSpellings(f)
		opts = append(opts, spellings...)
		switch values := flagValues(f, backends); {
		case f.IsFile:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(spellings, "|"))
		case len(values) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(spellings, "|"), strings.Join(values, " "))
		}
	}

	return fmt.Sprintf(`# Bash completion script for widecalc
# Add this to your ~/.bashrc or ~/.bash_completion

_widecalc_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    elif [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
    fi
    return 0
}

complete -F _widecalc_completions widecalc
`, strings.Join(opts, " "), cases.String(), strings.Join(calc.OpNames(), " "))
}

func zshCompletion(backends []string) string {
	var args strings.Builder
	for _, f := range flagRegistry {
		help := strings.ReplaceAll(f.Help, "'", "")
		action := ""
		switch values := flagValues(f, backends); {
		case f.IsFile:
			action = fmt.Sprintf(":%s:_files", f.ValueName)
		case len(values) > 0:
			action = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(values, " "))
		case f.ValueName != "":
			action = fmt.Sprintf(":%s:", f.ValueName)
		}
		for _, s := range flagSpellings(f) {
			fmt.Fprintf(&args, "    '%s[%s]%s' \\\n", s, help, action)
		}
	}
	return fmt.Sprintf(`#compdef widecalc
# Zsh completion script for widecalc

_widecalc() {
    _arguments \
%s    '1:operation:(%s)' \
    '2:first operand:' \
    '3:second operand:'
}

_widecalc "$@"
`, args.String(), strings.Join(calc.OpNames(), " "))
}

func fishCompletion(backends []string) string {
	var b strings.Builder
	b.WriteString("# Fish completion script for widecalc\n\n")
	b.WriteString("complete -c widecalc -f\n")
	for _, f := range flagRegistry {
		fmt.Fprintf(&b, "complete -c widecalc")
		if f.Long != "" {
			fmt.Fprintf(&b, " -o %s", f.Long)
		}
		if f.Short != "" {
			fmt.Fprintf(&b, " -o %s", f.Short)
		}
		if values := flagValues(f, backends); len(values) > 0 {
			fmt.Fprintf(&b, " -x -a '%s'", strings.Join(values, " "))
		} else if f.IsFile {
			b.WriteString(" -r -F")
		} else if f.ValueName != "" {
			b.WriteString(" -x")
		}
		fmt.Fprintf(&b, " -d '%s'\n", strings.ReplaceAll(f.Help, "'", ""))
	}
	fmt.Fprintf(&b, "complete -c widecalc -n '__fish_is_first_arg' -a '%s' -d 'Operation'\n", strings.Join(calc.OpNames(), " "))
	return b.String()
}
