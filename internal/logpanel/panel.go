// Package logpanel keeps the in-game log overlay: a bounded history of
// recent log lines with a level filter, fed straight from slog.
package logpanel

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// DefaultMaxEntries bounds the history when no size is configured.
const DefaultMaxEntries = 100

// Level is the panel's coarse severity.
type Level uint8

const (
	All Level = iota // filter only
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	}
	return "All"
}

// levelOf maps a slog level onto the panel's three severities.
func levelOf(l slog.Level) Level {
	switch {
	case l >= slog.LevelError:
		return Error
	case l >= slog.LevelWarn:
		return Warning
	default:
		return Info
	}
}

// Entry is one line in the panel.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

// Format renders the entry as "[15:04:05] message".
func (e Entry) Format() string {
	return "[" + e.Time.Format("15:04:05") + "] " + e.Message
}

// Panel is safe for concurrent use: the session goroutine renders it while
// log calls from any goroutine append to it.
type Panel struct {
	mu      sync.Mutex
	entries []Entry
	max     int
	filter  Level
	visible bool
	now     func() time.Time
}

// New creates a hidden panel keeping at most max entries.
func New(max int) *Panel {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Panel{max: max, now: time.Now}
}

// Add appends a message, dropping the oldest entry when full.
func (p *Panel) Add(level Level, msg string) {
	if level == All {
		level = Info
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, Entry{Time: p.now(), Level: level, Message: msg})
	if over := len(p.entries) - p.max; over > 0 {
		p.entries = append(p.entries[:0], p.entries[over:]...)
	}
}

func (p *Panel) Info(msg string)    { p.Add(Info, msg) }
func (p *Panel) Warning(msg string) { p.Add(Warning, msg) }
func (p *Panel) Error(msg string)   { p.Add(Error, msg) }

// Entries returns the entries passing the current filter, oldest first.
func (p *Panel) Entries() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Entry, 0, len(p.entries))
	for _, e := range p.entries {
		if p.filter == All || e.Level == p.filter {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the unfiltered entry count.
func (p *Panel) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// Clear drops every entry.
func (p *Panel) Clear() {
	p.mu.Lock()
	p.entries = p.entries[:0]
	p.mu.Unlock()
}

// SetFilter selects which level Entries returns; All shows everything.
func (p *Panel) SetFilter(l Level) {
	p.mu.Lock()
	p.filter = l
	p.mu.Unlock()
}

// CycleFilter advances All → Info → Warning → Error → All.
func (p *Panel) CycleFilter() Level {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filter = (p.filter + 1) % (Error + 1)
	return p.filter
}

// Filter returns the active filter.
func (p *Panel) Filter() Level {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

// Toggle flips visibility and returns the new state.
func (p *Panel) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = !p.visible
	return p.visible
}

// Visible reports whether the overlay is shown.
func (p *Panel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Handler returns an slog.Handler that appends records at or above level to
// the panel. Attributes are rendered as key=value after the message.
func (p *Panel) Handler(level slog.Leveler) slog.Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &handler{panel: p, level: level}
}

type handler struct {
	panel  *Panel
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	write := func(prefix string, a slog.Attr) {
		if a.Equal(slog.Attr{}) {
			return
		}
		b.WriteByte(' ')
		b.WriteString(prefix)
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(a.Value.String())
	}
	for _, a := range h.attrs {
		write("", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(h.prefix, a)
		return true
	})
	h.panel.Add(levelOf(r.Level), b.String())
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		next.attrs = append(next.attrs, a)
	}
	return &next
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}
