package louis

import (
	"errors"
	"fmt"

	"github.com/brailleworks/louis-go/internal/bindings"
)

var (
	// ErrAlreadyInUse is returned by New while another handle holds the
	// access token. Closing that handle makes New succeed again.
	ErrAlreadyInUse = errors.New("louis: engine handle already in use")

	// ErrClosed is returned by every operation on a handle after Close, and
	// by a second Close.
	ErrClosed = errors.New("louis: engine handle closed")

	// ErrConcurrentUse is returned when an operation starts while another
	// operation on the same handle is still running, either from another
	// goroutine or re-entered from a log sink. Share a handle through
	// Guarded instead.
	ErrConcurrentUse = errors.New("louis: engine handle used concurrently")

	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary.
	ErrNotBuilt = errors.New("louis: native bindings not built")

	// ErrNoVersion reports that the engine returned no version string.
	ErrNoVersion = errors.New("louis: engine reported no version")

	// ErrEncoding matches every *EncodingError.
	ErrEncoding = errors.New("louis: encoding error")

	// ErrVersionParse matches every *VersionParseError.
	ErrVersionParse = errors.New("louis: engine version is not a semantic version")

	// ErrTranslation matches every *TranslationError.
	ErrTranslation = errors.New("louis: translation failed")
)

// EncodingError reports text that cannot cross the engine boundary: input that
// is not valid UTF-8, or engine output that is not a valid code unit sequence.
type EncodingError struct {
	// Offset is the byte offset (input) or code unit index (output) of the
	// first offending element.
	Offset int
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("louis: encoding error at %d: %s", e.Offset, e.Reason)
}

func (e *EncodingError) Is(target error) bool { return target == ErrEncoding }

// VersionParseError reports an engine version string that does not follow
// semantic versioning. It indicates a build mismatch and is never retried.
type VersionParseError struct {
	Raw string
	Err error
}

func (e *VersionParseError) Error() string {
	return fmt.Sprintf("louis: cannot parse engine version %q: %v", e.Raw, e.Err)
}

func (e *VersionParseError) Unwrap() error { return e.Err }

func (e *VersionParseError) Is(target error) bool { return target == ErrVersionParse }

// TranslationError reports an engine failure or degenerate output for one
// translate call. Retrying with the same inputs gives the same result.
type TranslationError struct {
	Tables    string
	Direction Direction
	Err       error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("louis: %s translation with %q failed: %v", e.Direction, e.Tables, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

func (e *TranslationError) Is(target error) bool { return target == ErrTranslation }

var (
	errDegenerateOutput = errors.New("engine produced no output for non-empty input")
	errOutputOverflow   = errors.New("engine output exceeds buffer capacity")
)

// RemapError converts bindings layer errors to public API errors.
func RemapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bindings.ErrNotBuilt):
		return ErrNotBuilt
	case errors.Is(err, bindings.ErrNoVersion):
		return ErrNoVersion
	case errors.Is(err, bindings.ErrOutputOverflow):
		return errOutputOverflow
	default:
		return err
	}
}
