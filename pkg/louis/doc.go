// Package louis is a Go API for liblouis, the Braille translation engine.
//
// liblouis keeps global, thread-unsafe state: table caches, the log callback
// and the log threshold. The package models the right to touch that state as
// an AccessToken, of which at most one exists per process, and hands it out
// through a Louis handle:
//
//	l, err := louis.New(louis.Config{})
//	if errors.Is(err, louis.ErrAlreadyInUse) {
//	    // another part of the process holds the engine
//	}
//	defer l.Close()
//
//	braille, err := l.TranslateString("en_US.tbl", "Hello", 0)
//
// Opening a handle installs a bridge that forwards engine log records to the
// configured logging.Logger; closing it removes the bridge and frees all
// engine caches.
//
// A Louis may move between goroutines but must not be used by two at once.
// Guarded wraps a handle in a mutex for shared use.
//
// Builds without cgo compile but New returns ErrNotBuilt.
package louis
