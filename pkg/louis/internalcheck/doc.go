// Package internalcheck holds repository policy tests that inspect the
// module's own source with golang.org/x/tools/go/packages.
//
// The checks keep the cgo boundary where the louis package expects it:
// only internal/bindings imports "C", and only pkg/louis imports
// internal/bindings.
package internalcheck
