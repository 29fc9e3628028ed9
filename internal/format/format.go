// Package format turns entry names into display-ready OutputNames: it decides
// whether a name needs quoting, escapes it, and appends the type indicator.
package format

import (
	"io/fs"
	"regexp"

	"github.com/mattn/go-runewidth"

	"github.com/harrison/rl/internal/config"
	"github.com/harrison/rl/internal/models"
)

// Matchers holds the compiled patterns the Formatter uses. Build it once
// with DefaultMatchers and share it; it is read-only after construction.
type Matchers struct {
	Whitespace  *regexp.Regexp // any whitespace codepoint
	Indicator   *regexp.Regexp // reserved type-indicator characters
	SingleQuote *regexp.Regexp
	DoubleQuote *regexp.Regexp
}

// DefaultMatchers compiles the standard pattern set.
func DefaultMatchers() *Matchers {
	return &Matchers{
		Whitespace:  regexp.MustCompile(`([\s\v\x{85}\p{Z}])`),
		Indicator:   regexp.MustCompile(`[/*@=|]`),
		SingleQuote: regexp.MustCompile(`(')`),
		DoubleQuote: regexp.MustCompile(`(")`),
	}
}

// Formatter formats names according to a fixed configuration.
type Formatter struct {
	cfg *config.Config
	m   *Matchers
}

// NewFormatter creates a Formatter. A nil Matchers gets DefaultMatchers.
func NewFormatter(cfg *config.Config, m *Matchers) *Formatter {
	if m == nil {
		m = DefaultMatchers()
	}
	return &Formatter{cfg: cfg, m: m}
}

// NeedsQuoting reports whether name contains whitespace or a reserved
// type-indicator character.
func (f *Formatter) NeedsQuoting(name string) bool {
	return f.m.Whitespace.MatchString(name) || f.m.Indicator.MatchString(name)
}

// Format returns the display form of entry.
func (f *Formatter) Format(entry models.Entry) models.OutputName {
	display := entry.Name
	quoted := false

	switch {
	case f.cfg.QuoteNames:
		display = `"` + f.m.DoubleQuote.ReplaceAllString(entry.Name, `\$1`) + `"`
		quoted = true
	case f.NeedsQuoting(entry.Name):
		escaped := f.m.Whitespace.ReplaceAllString(entry.Name, `\$1`)
		escaped = f.m.SingleQuote.ReplaceAllString(escaped, `\$1`)
		display = `"` + escaped + `"`
		quoted = true
	}

	if f.cfg.Classify && entry.Meta != nil {
		display += Indicator(entry.Meta.Mode())
	}

	return models.OutputName{
		Display: display,
		Width:   runewidth.StringWidth(display),
		Quoted:  quoted,
	}
}

// FormatAll formats every entry in order.
func (f *Formatter) FormatAll(entries []models.Entry) []models.OutputName {
	out := make([]models.OutputName, len(entries))
	for i, e := range entries {
		out[i] = f.Format(e)
	}
	return out
}

// Indicator returns the classify suffix for a file mode, or "" for a plain
// non-executable file.
func Indicator(mode fs.FileMode) string {
	switch {
	case mode.IsDir():
		return "/"
	case mode&fs.ModeSymlink != 0:
		return "@"
	case mode&fs.ModeNamedPipe != 0:
		return "|"
	case mode&fs.ModeSocket != 0:
		return "="
	case mode.IsRegular() && mode.Perm()&0o111 != 0:
		return "*"
	}
	return ""
}
