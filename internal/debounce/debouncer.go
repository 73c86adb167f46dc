// Package debounce provides a trailing-edge debouncer driven by the bubbletea
// event loop. Each Schedule restarts the quiet window; only the tick belonging
// to the most recent Schedule is accepted.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultWindow is the quiet period before a scheduled value fires
const DefaultWindow = 500 * time.Millisecond

// FiredMsg is delivered when a scheduled window elapses.
// It must be passed to Accept to find out whether it is still current.
type FiredMsg struct {
	id    int64
	seq   uint64
	Value string
}

// Debouncer collapses bursts of Schedule calls into a single value.
// It is not safe for concurrent use; it is owned by a bubbletea model.
type Debouncer struct {
	id      int64
	window  time.Duration
	seq     uint64
	pending bool
}

var lastID atomic.Int64

func nextID() int64 {
	return lastID.Add(1)
}

// New creates a debouncer. A non-positive window uses DefaultWindow.
func New(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{id: nextID(), window: window}
}

// Window returns the quiet period
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Schedule records value as the latest input and returns a command that
// delivers a FiredMsg once the window has elapsed
func (d *Debouncer) Schedule(value string) tea.Cmd {
	d.seq++
	d.pending = true
	id, seq := d.id, d.seq
	return tea.Tick(d.window, func(time.Time) tea.Msg {
		return FiredMsg{id: id, seq: seq, Value: value}
	})
}

// Cancel drops the pending value; ticks already in flight will be rejected
func (d *Debouncer) Cancel() {
	d.seq++
	d.pending = false
}

// Pending reports whether a scheduled value has not fired yet
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Accept returns the value carried by msg if msg belongs to the latest
// Schedule of this debouncer
func (d *Debouncer) Accept(msg FiredMsg) (string, bool) {
	if msg.id != d.id || msg.seq != d.seq || !d.pending {
		return "", false
	}
	d.pending = false
	return msg.Value, true
}
