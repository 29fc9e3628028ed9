// Package display formats user-facing warnings for rl.
//
// Warnings describe option combinations that are accepted but have no
// effect, so the listing itself is never changed by this package:
//
//	for _, w := range display.OptionWarnings(cfg) {
//	    w.Display(os.Stderr)
//	}
//
// Warnings are printed in yellow through fatih/color, which disables color
// when NO_COLOR is set or stdout is not a terminal.
package display
