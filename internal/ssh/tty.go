// Package ssh adapts a gliderlabs SSH session into a tcell terminal so each
// connection can drive its own forklift board.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// SessionTty implements tcell.Tty on top of an SSH channel.
type SessionTty struct {
	rw    io.ReadWriteCloser
	winCh <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watch    sync.Once
}

var _ tcell.Tty = (*SessionTty)(nil)

// NewSessionTty wraps s. The PTY request supplies the initial size and winCh
// carries later window-change requests.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return newTty(s, pty.Window, winCh)
}

func newTty(rw io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{rw: rw, window: win, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.rw.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.rw.Write(b) }
func (t *SessionTty) Close() error                { return t.rw.Close() }

// Start, Stop and Drain have nothing to do: the channel is already in raw
// mode on the client side and writes are not buffered here.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize reports the most recent size the client sent.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize sets the callback run after each window change. tcell may call
// it more than once; only the first call starts the watcher.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
	if t.winCh == nil {
		return
	}
	t.watch.Do(func() { go t.watchWindow() })
}

func (t *SessionTty) watchWindow() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
