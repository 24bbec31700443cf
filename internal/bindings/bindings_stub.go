//go:build !cgo || windows

package bindings

// Stub implementations for non-CGO builds or Windows.
// These allow the package to compile but return ErrNotBuilt when called.

func CharSize() int { return 0 }

func Version() (string, error) {
	return "", ErrNotBuilt
}

func ListTables() ([]string, error) {
	return nil, ErrNotBuilt
}

func SetLogLevel(int) {}

func SetDataPath(string) {}

func Free() {}

func Translate(string, []uint32, int, int, bool) ([]uint32, int, error) {
	return nil, 0, ErrNotBuilt
}

func InstallLogSink(LogSink) {}

func RemoveLogSink() {}
