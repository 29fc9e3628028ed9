package display

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/rl/internal/config"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Options    []string // Options involved (optional)
	Suggestion string   // Action to take (optional)
}

var warnColor = color.New(color.FgYellow)

// Display writes the warning to out, in yellow when color is enabled.
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Options) > 0 {
		b.WriteString("    ")
		if len(w.Options) == 1 {
			b.WriteString("Option: ")
		} else {
			b.WriteString("Options: ")
		}
		b.WriteString(strings.Join(w.Options, ", "))
		b.WriteString("\n")
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	warnColor.Fprint(out, b.String())
}

// OptionWarnings returns a warning for each option that cfg makes ineffective.
func OptionWarnings(cfg *config.Config) []Warning {
	var warnings []Warning

	if cfg.Long && cfg.OnePerLine {
		warnings = append(warnings, Warning{
			Title:   "One-per-line output is implied by the long format",
			Options: []string{"-1", "-l"},
		})
	}

	if cfg.Long && cfg.NullSeparated {
		warnings = append(warnings, Warning{
			Title:      "NUL-separated output is ignored by the long format",
			Options:    []string{"-0", "-l"},
			Suggestion: "Drop -l to get NUL-terminated names",
		})
	}

	if cfg.DirectoryOnly && cfg.Recursive {
		warnings = append(warnings, Warning{
			Title:   "Recursion has no effect when listing directories as entries",
			Options: []string{"-R", "-d"},
		})
	}

	if cfg.HumanReadable && !cfg.Long {
		warnings = append(warnings, Warning{
			Title:      "Human-readable sizes only apply to the long format",
			Options:    []string{"-h"},
			Suggestion: "Add -l to show sizes",
		})
	}

	return warnings
}
