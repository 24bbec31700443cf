package louis

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/coreos/go-semver/semver"
	"github.com/google/uuid"

	"github.com/brailleworks/louis-go/internal/bindings"
	"github.com/brailleworks/louis-go/pkg/louis/logging"
)

var errInvalidDirection = errors.New("invalid direction")

// Louis is an open handle to the liblouis engine. It owns the process-wide
// AccessToken, so at most one Louis exists at a time.
//
// A Louis may move between goroutines but is not safe for concurrent use:
// overlapping calls fail with ErrConcurrentUse rather than entering the engine
// twice. Wrap it in a Guarded to share it.
type Louis struct {
	cfg    Config
	token  *AccessToken
	eng    engine
	width  int
	logger logging.Logger

	// busy is held for the duration of every operation. closed is only read
	// or written while busy is held.
	busy   atomic.Bool
	closed bool
}

// New claims the access token and opens the engine: it applies cfg.DataPath,
// installs the log bridge and sets the engine log threshold from cfg.Logger.
// It returns ErrAlreadyInUse while another handle is open and ErrNotBuilt when
// the native bindings are not linked. On failure nothing is left installed.
func New(cfg Config) (*Louis, error) {
	return newWithEngine(cfg, nativeEngine{})
}

func newWithEngine(cfg Config, eng engine) (*Louis, error) {
	tok, ok := ClaimToken()
	if !ok {
		return nil, ErrAlreadyInUse
	}

	width := eng.charSize()
	if width == 0 {
		tok.Release()
		return nil, ErrNotBuilt
	}

	ctx := context.Background()
	logger := cfg.logger().With("session", uuid.NewString())
	engineLogger := logger.With("source", logSource)

	if cfg.DataPath != "" {
		eng.setDataPath(cfg.DataPath)
	}
	eng.installLogSink(newLogSink(engineLogger))
	threshold := engineThreshold(ctx, engineLogger)
	eng.setLogLevel(threshold)

	l := &Louis{
		cfg:    cfg,
		token:  tok,
		eng:    eng,
		width:  width,
		logger: logger,
	}
	runtime.SetFinalizer(l, func(l *Louis) { _ = l.Close() })

	logger.Debug(ctx, "engine handle opened", "widechar_bytes", width, "engine_log_level", threshold)
	return l, nil
}

// Close restores the engine's default log level, unregisters the log bridge,
// resets the data path and releases all engine caches, then gives the access
// token back. Only the first call does any work; later calls return
// ErrClosed.
func (l *Louis) Close() error {
	if err := l.acquire(); err != nil {
		return err
	}
	defer l.release()

	runtime.SetFinalizer(l, nil)

	l.eng.setLogLevel(bindings.LogDefault)
	l.eng.removeLogSink()
	if l.cfg.DataPath != "" {
		l.eng.setDataPath("")
	}
	l.eng.free()

	l.closed = true
	l.token.Release()
	l.token = nil

	l.logger.Debug(context.Background(), "engine handle closed")
	return nil
}

// Version returns the engine version. Strings that are not semantic versions
// yield a *VersionParseError.
func (l *Louis) Version() (*semver.Version, error) {
	if err := l.acquire(); err != nil {
		return nil, err
	}
	defer l.release()

	raw, err := l.eng.version()
	if err != nil {
		return nil, RemapError(err)
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, &VersionParseError{Raw: raw, Err: err}
	}
	return v, nil
}

// ListTables returns the base names of all tables the engine can locate, in
// the order the engine reports them.
func (l *Louis) ListTables() ([]string, error) {
	if err := l.acquire(); err != nil {
		return nil, err
	}
	defer l.release()

	paths, err := l.eng.listTables()
	if err != nil {
		return nil, RemapError(err)
	}

	names := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		names = append(names, filepath.Base(p))
	}
	return names, nil
}

// Translate runs one translation pass over text with the comma-separated
// table list tables. An empty text yields an empty result without entering
// the engine. Tables are not validated here; the engine reports unknown
// tables as a *TranslationError. A translation that does not consume the
// whole input fails rather than returning a truncated result.
func (l *Louis) Translate(tables, text string, dir Direction, mode Mode) (string, error) {
	if err := l.acquire(); err != nil {
		return "", err
	}
	defer l.release()

	if dir != Forward && dir != Backward {
		return "", &TranslationError{Tables: tables, Direction: dir, Err: errInvalidDirection}
	}

	units, err := EncodeWide(text, l.width)
	if err != nil {
		return "", err
	}
	if len(units) == 0 {
		return "", nil
	}

	outCap := OutputCapacity(len(units), l.width)
	l.logger.Debug(context.Background(), "translate",
		"tables", tables,
		"direction", dir.String(),
		"mode", mode.String(),
		"units", len(units),
		logging.Redacted("text"),
	)

	out, consumed, err := l.eng.translate(tables, units, outCap, int(mode), dir == Backward)
	if err != nil {
		if errors.Is(err, bindings.ErrNotBuilt) {
			return "", ErrNotBuilt
		}
		return "", &TranslationError{Tables: tables, Direction: dir, Err: RemapError(err)}
	}
	if len(out) == 0 {
		return "", &TranslationError{Tables: tables, Direction: dir, Err: errDegenerateOutput}
	}
	// The engine stops early and reports success when the output buffer
	// fills, so a short consumed count means the result is truncated.
	if len(out) > outCap || consumed < len(units) {
		return "", &TranslationError{Tables: tables, Direction: dir, Err: errOutputOverflow}
	}

	s, err := DecodeWide(out, l.width)
	if err != nil {
		return "", fmt.Errorf("decode engine output: %w", err)
	}
	return s, nil
}

// TranslateString translates text to Braille.
func (l *Louis) TranslateString(tables, text string, mode Mode) (string, error) {
	return l.Translate(tables, text, Forward, mode)
}

// BackTranslateString translates Braille back to text.
func (l *Louis) BackTranslateString(tables, text string, mode Mode) (string, error) {
	return l.Translate(tables, text, Backward, mode)
}

func (l *Louis) acquire() error {
	if l == nil {
		return ErrClosed
	}
	if !l.busy.CompareAndSwap(false, true) {
		return ErrConcurrentUse
	}
	if l.closed {
		l.busy.Store(false)
		return ErrClosed
	}
	return nil
}

func (l *Louis) release() {
	l.busy.Store(false)
}
