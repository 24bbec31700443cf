package bindings

import (
	"errors"
	"sync/atomic"
)

// Log levels understood by lou_setLogLevel. Values mirror the logLevels enum
// in liblouis.h.
const (
	LogAll   = 0
	LogDebug = 10000
	LogInfo  = 20000
	LogWarn  = 30000
	LogError = 40000
	LogFatal = 50000
	LogOff   = 60000
)

// LogDefault is the threshold liblouis starts with.
const LogDefault = LogInfo

// Translation mode bits. Values mirror the translationModes enum in
// liblouis.h.
const (
	ModeNoContractions = 1
	ModeDotsIO         = 4
	ModeUCBrl          = 64
	ModePartialTrans   = 256
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Callers can use this to skip engine-dependent work.
	ErrNotBuilt = errors.New("louis/internal/bindings: native bindings not built")

	// ErrTranslate is returned when the engine reports failure from
	// lou_translateString or lou_backTranslateString.
	ErrTranslate = errors.New("louis/internal/bindings: engine reported translation failure")

	// ErrOutputOverflow is returned when the engine reports an output length
	// larger than the buffer it was handed.
	ErrOutputOverflow = errors.New("louis/internal/bindings: output length exceeds buffer capacity")

	// ErrOutOfMemory is returned when a C allocation fails.
	ErrOutOfMemory = errors.New("louis/internal/bindings: allocation failed")

	// ErrNoVersion is returned when lou_version returns NULL.
	ErrNoVersion = errors.New("louis/internal/bindings: engine reported no version")

	// ErrNoTables is returned when lou_listTables returns NULL.
	ErrNoTables = errors.New("louis/internal/bindings: table list unavailable")
)

// LogSink receives log records emitted by the engine. It runs on the calling
// goroutine, inside the engine call that produced the record, and must not
// call back into the engine.
type LogSink func(level int, message string)

var sink atomic.Pointer[LogSink]

func setSink(s LogSink) {
	if s == nil {
		sink.Store(nil)
		return
	}
	sink.Store(&s)
}

func dispatchLog(level int, message string) {
	if p := sink.Load(); p != nil {
		(*p)(level, message)
	}
}
