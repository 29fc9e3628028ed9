// Package printer drives a complete listing: it collects the top-level
// block, then walks pending directories depth-first, printing each as its
// own labeled block.
package printer

import (
	"errors"
	"io"

	"github.com/harrison/rl/internal/collector"
	"github.com/harrison/rl/internal/config"
	"github.com/harrison/rl/internal/fileutil"
	"github.com/harrison/rl/internal/format"
	"github.com/harrison/rl/internal/layout"
	"github.com/harrison/rl/internal/longfmt"
	"github.com/harrison/rl/internal/models"
)

// ErrIncomplete is returned when ContinueOnError skipped at least one
// directory that could not be listed. Each skip was already reported.
var ErrIncomplete = errors.New("some directories could not be listed")

// Printer renders listings to a writer. A Printer is single-use per Run.
type Printer struct {
	out       io.Writer
	cfg       *config.Config
	collector *collector.Collector
	formatter *format.Formatter
	long      *longfmt.Renderer
	log       collector.Logger

	printed    bool // a block has been written
	incomplete bool // a directory was skipped
}

// New creates a Printer reading through fsys. The Matchers are shared with
// the formatter; nil selects format.DefaultMatchers.
func New(out io.Writer, fsys fileutil.FileSystem, cfg *config.Config, m *format.Matchers, log collector.Logger) *Printer {
	c := collector.New(fsys, cfg, log)
	if log == nil {
		log = discard{}
	}
	return &Printer{
		out:       out,
		cfg:       cfg,
		collector: c,
		formatter: format.NewFormatter(cfg, m),
		long:      longfmt.New(cfg),
		log:       log,
	}
}

// Run lists paths (or "." when empty).
//
// Unreadable top-level paths are reported and skipped. A directory that
// cannot be listed aborts the run with a *collector.ListError, unless
// ContinueOnError is set, in which case it is reported, its subtree is
// skipped, and ErrIncomplete is returned once everything else is printed.
func (p *Printer) Run(paths []string) error {
	top, err := p.collector.Collect(paths)
	if err != nil {
		if err := p.skip(err); err != nil {
			return err
		}
	}

	shown := top.Entries
	if top.Expanded {
		shown = p.blockEntries(top)
	}
	if top.Expanded || len(shown) > 0 {
		if err := p.block(shown); err != nil {
			return err
		}
	}

	// LIFO work-stack; children are pushed in reverse so they pop in name order.
	var stack []models.PendingDirectory
	stack = pushReversed(stack, top.Pending)

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		res, err := p.collector.Expand(dir)
		if err != nil {
			if err := p.skip(err); err != nil {
				return err
			}
			continue
		}

		if err := p.header(dir.Path); err != nil {
			return err
		}
		if err := p.block(p.blockEntries(res)); err != nil {
			return err
		}
		stack = pushReversed(stack, res.Pending)
	}

	if p.incomplete {
		return ErrIncomplete
	}
	return nil
}

// skip applies the enumeration-failure policy: nil means keep going.
func (p *Printer) skip(err error) error {
	var listErr *collector.ListError
	if !p.cfg.ContinueOnError || !errors.As(err, &listErr) {
		return err
	}
	p.log.ReportPathError(listErr.Path, listErr.Err)
	p.incomplete = true
	return nil
}

// header writes the separating blank line (after the first block) and "<path>:".
func (p *Printer) header(path string) error {
	s := path + ":\n"
	if p.printed {
		s = "\n" + s
	}
	_, err := io.WriteString(p.out, s)
	return err
}

// block formats and writes one block of entries.
func (p *Printer) block(entries []models.Entry) error {
	p.printed = true
	p.log.LogDebug("rendering block of %d entries", len(entries))

	names := p.formatter.FormatAll(entries)
	if p.cfg.Long {
		return p.long.Render(p.out, entries, names)
	}

	arr := layout.Layout(names, p.cfg.Width, layout.Options{
		OnePerLine:    p.cfg.OnePerLine,
		NullSeparated: p.cfg.NullSeparated,
		ForceQuoted:   p.cfg.QuoteNames,
	})
	return arr.Render(p.out)
}

// blockEntries returns what a directory block displays: its entries and the
// names of its pending subdirectories, sorted together, with the synthesized
// "." and ".." kept in front.
func (p *Printer) blockEntries(res collector.Result) []models.Entry {
	if len(res.Pending) == 0 {
		return res.Entries
	}

	head := 0
	if p.cfg.ShowAll {
		for head < len(res.Entries) && head < 2 && (res.Entries[head].Name == "." || res.Entries[head].Name == "..") {
			head++
		}
	}

	rest := make([]models.Entry, 0, len(res.Entries)-head+len(res.Pending))
	rest = append(rest, res.Entries[head:]...)
	for _, d := range res.Pending {
		rest = append(rest, d.AsEntry())
	}
	models.SortEntries(rest)

	return append(res.Entries[:head:head], rest...)
}

func pushReversed(stack, dirs []models.PendingDirectory) []models.PendingDirectory {
	for i := len(dirs) - 1; i >= 0; i-- {
		stack = append(stack, dirs[i])
	}
	return stack
}

type discard struct{}

func (discard) ReportPathError(string, error)   {}
func (discard) LogDebug(string, ...interface{}) {}
