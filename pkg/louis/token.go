package louis

import "sync/atomic"

// claimed is the process-wide flag behind AccessToken.
var claimed atomic.Bool

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// AccessToken is the right to call into liblouis. At most one token is live
// in a process at any time. A token may be handed to another goroutine but
// must not be used from two goroutines at once.
type AccessToken struct {
	_        noCopy
	released atomic.Bool
}

// ClaimToken returns the access token if no other token is outstanding. The
// first caller wins; there is no queueing and a failed claim leaves the
// current holder untouched.
func ClaimToken() (*AccessToken, bool) {
	if !claimed.CompareAndSwap(false, true) {
		return nil, false
	}
	return &AccessToken{}, true
}

// Release gives the token back so a later ClaimToken can succeed. Releasing
// the same token twice is a no-op and never frees a claim held by a newer
// token.
func (t *AccessToken) Release() {
	if t == nil {
		return
	}
	if t.released.CompareAndSwap(false, true) {
		claimed.Store(false)
	}
}

// TokenClaimed reports whether a token is currently outstanding.
func TokenClaimed() bool {
	return claimed.Load()
}
