// Package bindings contains all cgo bindings to the liblouis C library.
//
// # Design Principles
//
// 1. Isolation: ALL cgo code lives in this package. No other package should
//    import "C".
//
// 2. Minimal Surface: only the entry points the louis package needs are
//    declared: version, table listing, forward and backward translation, log
//    level and callback registration, data path and cache release.
//
// 3. Error Handling: engine return codes become Go errors immediately.
//
// 4. Memory Management: C buffers are allocated and freed inside a single
//    call. Nothing returned to Go points into C memory.
//
// # Threading
//
// liblouis keeps global, unsynchronized state. Nothing in this package
// serializes access; callers must hold the louis access token before calling
// any function here.
//
// Builds without cgo (or on Windows) get stubs returning ErrNotBuilt.
package bindings
