package review

import (
	"sync"
	"time"

	"github.com/share2solve/backend/internal/model"
)

// UndoWindow is how long a deleted problem stays available for reinsertion.
const UndoWindow = 5 * time.Second

// UndoBuffer holds the most recently deleted problem for a fixed window.
// Within the window Take returns it so the caller can re-create it (the
// reinserted record gets a new id); afterwards it is discarded. Holding a
// new deletion replaces any previous one.
type UndoBuffer struct {
	ttl time.Duration

	mu      sync.Mutex
	problem *model.Problem
	timer   *time.Timer
}

// NewUndoBuffer creates an UndoBuffer with the given window.
func NewUndoBuffer(ttl time.Duration) *UndoBuffer {
	return &UndoBuffer{ttl: ttl}
}

// Hold stores the deleted problem and starts (or restarts) the expiry timer.
func (b *UndoBuffer) Hold(p *model.Problem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.problem = p
	// The previous timer may already have fired and be waiting on the mutex.
	// expire checks the held pointer so such a stale run cannot clear p.
	b.timer = time.AfterFunc(b.ttl, func() { b.expire(p) })
}

func (b *UndoBuffer) expire(p *model.Problem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.problem != p {
		return
	}
	b.problem = nil
	b.timer = nil
}

// Take returns the held problem and clears the buffer. The second return is
// false when nothing is held or the window has elapsed.
func (b *UndoBuffer) Take() (*model.Problem, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.problem == nil {
		return nil, false
	}
	p := b.problem
	b.problem = nil
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	return p, true
}

// Pending reports whether a deleted problem is currently held.
func (b *UndoBuffer) Pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.problem != nil
}
