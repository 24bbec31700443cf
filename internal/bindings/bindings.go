//go:build cgo && !windows

package bindings

/*
#cgo pkg-config: liblouis
#include <stdlib.h>
#include <liblouis.h>
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// CharSize returns the width in bytes of the engine's widechar type (2 for
// UCS-2 builds, 4 for UCS-4 builds).
func CharSize() int {
	return int(C.sizeof_widechar)
}

// Version returns the string reported by lou_version.
func Version() (string, error) {
	v := C.lou_version()
	if v == nil {
		return "", ErrNoVersion
	}
	return C.GoString(v), nil
}

// ListTables walks the NULL-terminated array returned by lou_listTables and
// copies every entry into Go memory. The array belongs to the engine and may
// be invalidated by the next engine call, so nothing from it is retained.
func ListTables() ([]string, error) {
	list := C.lou_listTables()
	if list == nil {
		return nil, ErrNoTables
	}

	var out []string
	for p := list; *p != nil; p = (**C.char)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p))) {
		out = append(out, C.GoString(*p))
	}
	return out, nil
}

// SetLogLevel sets the engine's log threshold.
func SetLogLevel(level int) {
	C.lou_setLogLevel(C.logLevels(level))
}

// SetDataPath points the engine at an additional table directory. An empty
// path restores the built-in search path.
func SetDataPath(path string) {
	if path == "" {
		C.lou_setDataPath(nil)
		return
	}
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))
	C.lou_setDataPath(cPath)
}

// Free releases every table and cache the engine holds.
func Free() {
	C.lou_free()
}

// Translate runs one forward or backward translation pass.
//
// Parameters:
//   - tables: comma-separated table list, passed through unchanged
//   - in: input code units; each must fit in the engine's widechar
//   - outCap: output buffer capacity in code units
//   - mode: translationModes bitmask
//   - backward: selects lou_backTranslateString
//
// Returns the produced code units and the number of input units the engine
// reports as consumed. The output buffer is allocated in C, its written
// prefix copied out, and then freed; the engine-reported length is trusted
// over any NUL terminator.
func Translate(tables string, in []uint32, outCap int, mode int, backward bool) ([]uint32, int, error) {
	if len(in) == 0 {
		return nil, 0, nil
	}
	if outCap <= 0 {
		return nil, 0, ErrOutputOverflow
	}

	cTables := C.CString(tables)
	defer C.free(unsafe.Pointer(cTables))

	inbuf := make([]C.widechar, len(in))
	for i, u := range in {
		inbuf[i] = C.widechar(u)
	}

	outbuf := (*C.widechar)(C.calloc(C.size_t(outCap), C.size_t(C.sizeof_widechar)))
	if outbuf == nil {
		return nil, 0, ErrOutOfMemory
	}
	defer C.free(unsafe.Pointer(outbuf))

	inlen := C.int(len(inbuf))
	outlen := C.int(outCap)

	var rc C.int
	if backward {
		rc = C.lou_backTranslateString(cTables, &inbuf[0], &inlen, outbuf, &outlen, nil, nil, C.int(mode))
	} else {
		rc = C.lou_translateString(cTables, &inbuf[0], &inlen, outbuf, &outlen, nil, nil, C.int(mode))
	}
	runtime.KeepAlive(inbuf)

	if rc == 0 {
		return nil, 0, ErrTranslate
	}
	if outlen < 0 || int(outlen) > outCap {
		return nil, 0, ErrOutputOverflow
	}
	return widecharsToUnits(outbuf, int(outlen)), int(inlen), nil
}

// widecharsToUnits copies n code units out of C memory. The caller keeps
// ownership of buf.
func widecharsToUnits(buf *C.widechar, n int) []uint32 {
	if buf == nil || n == 0 {
		return []uint32{}
	}
	src := unsafe.Slice(buf, n)
	out := make([]uint32, n)
	for i, w := range src {
		out[i] = uint32(w)
	}
	return out
}
