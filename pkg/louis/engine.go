package louis

import "github.com/brailleworks/louis-go/internal/bindings"

// engine is the set of native entry points a handle drives. The production
// implementation forwards to internal/bindings; tests substitute a fake.
type engine interface {
	charSize() int
	version() (string, error)
	listTables() ([]string, error)
	translate(tables string, in []uint32, outCap int, mode int, backward bool) ([]uint32, int, error)
	setLogLevel(level int)
	setDataPath(path string)
	installLogSink(s bindings.LogSink)
	removeLogSink()
	free()
}

type nativeEngine struct{}

func (nativeEngine) charSize() int { return bindings.CharSize() }

func (nativeEngine) version() (string, error) { return bindings.Version() }

func (nativeEngine) listTables() ([]string, error) { return bindings.ListTables() }

func (nativeEngine) translate(tables string, in []uint32, outCap int, mode int, backward bool) ([]uint32, int, error) {
	return bindings.Translate(tables, in, outCap, mode, backward)
}

func (nativeEngine) setLogLevel(level int) { bindings.SetLogLevel(level) }

func (nativeEngine) setDataPath(path string) { bindings.SetDataPath(path) }

func (nativeEngine) installLogSink(s bindings.LogSink) { bindings.InstallLogSink(s) }

func (nativeEngine) removeLogSink() { bindings.RemoveLogSink() }

func (nativeEngine) free() { bindings.Free() }
