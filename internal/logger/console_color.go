package logger

import "github.com/fatih/color"

// colorScheme defines the colors used for level tags and error lines.
// Red: errors and unreadable paths
// Yellow: warnings
// Blue: info
// Cyan: debug
// Gray: trace
type colorScheme struct {
	fail  *color.Color
	warn  *color.Color
	info  *color.Color
	debug *color.Color
	trace *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		fail:  color.New(color.FgRed),
		warn:  color.New(color.FgYellow),
		info:  color.New(color.FgBlue),
		debug: color.New(color.FgCyan),
		trace: color.New(color.FgHiBlack),
	}
}

// level returns the colorized tag for an upper-case level name.
func (s *colorScheme) level(level string) string {
	switch level {
	case "TRACE":
		return s.trace.Sprint(level)
	case "DEBUG":
		return s.debug.Sprint(level)
	case "INFO":
		return s.info.Sprint(level)
	case "WARN":
		return s.warn.Sprint(level)
	case "ERROR":
		return s.fail.Sprint(level)
	default:
		return level
	}
}
