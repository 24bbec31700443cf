package louis

import "sync"

// Guarded serializes access to a Louis so several goroutines can share it.
// The lock is not reentrant: calling any Guarded method from inside Do
// deadlocks.
type Guarded struct {
	mu sync.Mutex
	l  *Louis
}

// NewGuarded wraps l. The caller must stop using l directly.
func NewGuarded(l *Louis) *Guarded {
	return &Guarded{l: l}
}

// Do runs fn with exclusive use of the handle.
func (g *Guarded) Do(fn func(*Louis) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.l)
}

// Translate is Do around (*Louis).Translate.
func (g *Guarded) Translate(tables, text string, dir Direction, mode Mode) (string, error) {
	var out string
	err := g.Do(func(l *Louis) error {
		var err error
		out, err = l.Translate(tables, text, dir, mode)
		return err
	})
	return out, err
}

// Close closes the wrapped handle once no call is in flight.
func (g *Guarded) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.l.Close()
}
