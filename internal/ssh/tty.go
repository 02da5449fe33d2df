package ssh

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is assumed when the client sends no TERM.
const DefaultTerm = "xterm-256color"

// sessionTty implements tcell.Tty over one SSH session channel.
type sessionTty struct {
	gossh.Session

	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	resize func()
	once   sync.Once
}

func (t *sessionTty) Start() error { return nil }
func (t *sessionTty) Stop() error  { return nil }
func (t *sessionTty) Drain() error { return nil }

func (t *sessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize swaps the resize callback. The window channel is watched by
// a single goroutine for the life of the session.
func (t *sessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	t.once.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				cb := t.resize
				t.mu.Unlock()
				if cb != nil {
					cb()
				}
			}
		}()
	})
}

// termMu serializes TERM lookups: tcell reads it from the process env.
var termMu sync.Mutex

// NewScreen opens an initialized tcell screen on an SSH session. The
// session must have requested a PTY.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, fmt.Errorf("session %s has no pty", s.RemoteAddr())
	}
	tty := &sessionTty{Session: s, window: pty.Window, winCh: winCh}

	termMu.Lock()
	_ = os.Setenv("TERM", Term(pty.Term, s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}

// allowedTerms lists the terminal types a client may select. TERM ends up
// in a terminfo lookup, so anything else falls back to DefaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// Term picks the terminal type: the PTY request first, then TERM from the
// session environment, then DefaultTerm.
func Term(ptyTerm string, environ []string) string {
	term := ptyTerm
	if term == "" {
		for _, kv := range environ {
			if v, ok := strings.CutPrefix(kv, "TERM="); ok {
				term = v
				break
			}
		}
	}
	if !allowedTerms[term] {
		return DefaultTerm
	}
	return term
}
