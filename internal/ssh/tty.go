// Package ssh adapts gliderlabs/ssh sessions to tcell terminals so each
// connection can host its own shop.
package ssh

import (
	"errors"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPty is returned for sessions opened without a pseudo-terminal.
var ErrNoPty = errors.New("ssh: session has no pty")

// Tty implements tcell.Tty on top of an SSH session's PTY channel.
type Tty struct {
	session gossh.Session
	term    string
	winCh   <-chan gossh.Window
	watch   sync.Once

	mu     sync.Mutex
	window gossh.Window
	cb     func()
}

// NewTty wraps s. The session must have requested a PTY.
func NewTty(s gossh.Session) (*Tty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPty
	}
	term := pty.Term
	for _, kv := range s.Environ() {
		if v, found := strings.CutPrefix(kv, "TERM="); found && v != "" {
			term = v
			break
		}
	}
	return &Tty{session: s, term: term, window: pty.Window, winCh: winCh}, nil
}

// Term returns the client's terminal type, or "" when it sent none.
func (t *Tty) Term() string { return t.term }

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *Tty) Close() error                { return t.session.Close() }

// Start, Stop and Drain are no-ops: the channel lifetime belongs to the
// server handler.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the last size the client reported.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The window channel is
// drained by one goroutine for the life of the session, however many times
// tcell re-registers.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()
	t.watch.Do(func() { go t.watchResize() })
}

func (t *Tty) watchResize() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.cb
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
