// Package longfmt renders the long listing: one line per entry with mode,
// owner, group, size, modification time and the formatted name.
package longfmt

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/harrison/rl/internal/config"
	"github.com/harrison/rl/internal/models"
)

// recentWindow is how far back a modification time still shows hh:mm
// instead of the year.
const recentWindow = 182 * 24 * time.Hour

// Renderer writes long-format blocks.
type Renderer struct {
	cfg *config.Config
	now func() time.Time
}

// New creates a Renderer using the wall clock.
func New(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg, now: time.Now}
}

type row struct {
	mode, owner, group, size, when, name string
}

// Render writes one line per entry. names[i] must be the formatted form of
// entries[i]. Columns are aligned across the block.
func (r *Renderer) Render(w io.Writer, entries []models.Entry, names []models.OutputName) error {
	rows := make([]row, len(entries))
	var wOwner, wGroup, wSize int
	now := r.now()

	for i, e := range entries {
		rw := row{name: names[i].Display}
		if e.Meta != nil {
			rw.mode = e.Meta.Mode().String()
			rw.owner = e.Meta.Owner()
			rw.group = e.Meta.Group()
			rw.size = r.size(e.Meta.Size())
			rw.when = timestamp(e.Meta.ModTime(), now)
		}
		wOwner = max(wOwner, runewidth.StringWidth(rw.owner))
		wGroup = max(wGroup, runewidth.StringWidth(rw.group))
		wSize = max(wSize, len(rw.size))
		rows[i] = rw
	}

	var b strings.Builder
	for _, rw := range rows {
		b.WriteString(rw.mode)
		if !r.cfg.NoOwner {
			b.WriteByte(' ')
			b.WriteString(runewidth.FillRight(rw.owner, wOwner))
		}
		if !r.cfg.NoGroup {
			b.WriteByte(' ')
			b.WriteString(runewidth.FillRight(rw.group, wGroup))
		}
		b.WriteByte(' ')
		b.WriteString(runewidth.FillLeft(rw.size, wSize))
		b.WriteByte(' ')
		b.WriteString(rw.when)
		b.WriteByte(' ')
		b.WriteString(rw.name)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) size(n int64) string {
	if r.cfg.HumanReadable {
		if n < 0 {
			n = 0
		}
		return humanize.Bytes(uint64(n))
	}
	return strconv.FormatInt(n, 10)
}

func timestamp(t, now time.Time) string {
	if t.IsZero() {
		return strings.Repeat(" ", len("Jan _2 15:04"))
	}
	if now.Sub(t) > recentWindow || t.After(now.Add(time.Hour)) {
		return t.Format("Jan _2  2006")
	}
	return t.Format("Jan _2 15:04")
}
