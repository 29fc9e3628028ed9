package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/rl/internal/format"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for rl
func NewRootCommand() *cobra.Command {
	// Compiled once per process and shared by every Formatter.
	matchers := format.DefaultMatchers()

	cmd := &cobra.Command{
		Use:   "rl [flags] [path...]",
		Short: "List directory contents",
		Long: `rl lists files and directories in columns that fit the output width.

With no path, the current directory is listed. A single directory argument
is listed in place; several arguments are listed file names first, then each
directory as its own block headed by "<path>:".

Names containing whitespace or one of / * @ = | are quoted and escaped.

Configuration defaults are read from $RL_CONFIG or <user config dir>/rl/config.yaml.
CLI flags override configuration file settings.

Examples:
  rl                       # List the current directory
  rl -a ~/src              # Include dotfiles and the . and .. entries
  rl -R -w 120 project/    # Recurse, wrapping at 120 columns
  rl -1 *.go               # One name per line
  rl -0 dir | xargs -0 wc  # NUL-terminated names for xargs
  rl -lh /var/log          # Long listing with human-readable sizes`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// Errors are printed by Execute in the "<path>: <message>" form
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, matchers)
		},
	}

	f := cmd.Flags()
	f.String("config", "", "Path to config file (default: $RL_CONFIG or <user config dir>/rl/config.yaml)")
	f.BoolP("all", "a", false, "Include entries starting with . and the . and .. entries")
	f.BoolP("almost-all", "A", false, "Include entries starting with . but not . and ..")
	f.BoolP("directory", "d", false, "List directory arguments themselves, not their contents")
	f.BoolP("recursive", "R", false, "List subdirectories recursively")
	f.BoolP("classify", "F", false, "Append an indicator (one of /@|=*) to names")
	f.BoolP("quote-name", "Q", false, "Enclose every name in double quotes")
	f.IntP("width", "w", 0, "Output width in cells (0 = unlimited)")
	f.BoolP("one", "1", false, "List one name per line")
	f.BoolP("zero", "0", false, "End each name with NUL instead of laying out columns")
	f.BoolP("long", "l", false, "Use the long listing format")
	f.BoolP("long-no-owner", "g", false, "Like -l, but do not list the owner")
	f.BoolP("long-no-group", "o", false, "Like -l, but do not list the group")
	f.BoolP("human-readable", "h", false, "With -l, print sizes like 1.2 kB")
	f.Bool("keep-going", false, "Report unreadable directories and continue instead of aborting")
	f.String("log-level", "", "Diagnostic verbosity: trace, debug, info, warn, error")

	return cmd
}
