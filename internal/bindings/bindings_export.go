//go:build cgo && !windows

package bindings

// #include <stdlib.h>
import "C"

//export louisGoLog
func louisGoLog(level C.int, message *C.char) {
	if message == nil {
		return
	}
	dispatchLog(int(level), C.GoString(message))
}
