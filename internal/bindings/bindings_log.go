//go:build cgo && !windows

package bindings

/*
#include <liblouis.h>

extern void louisGoLog(int level, char *message);

static void louis_go_log_trampoline(logLevels level, const char *message) {
	louisGoLog((int)level, (char *)message);
}

static void louis_go_install_log(void) {
	lou_registerLogCallback(louis_go_log_trampoline);
}

static void louis_go_remove_log(void) {
	lou_registerLogCallback(NULL);
}
*/
import "C"

// InstallLogSink registers s as the receiver of engine log records and hooks
// the trampoline into lou_registerLogCallback.
func InstallLogSink(s LogSink) {
	setSink(s)
	C.louis_go_install_log()
}

// RemoveLogSink unregisters the engine callback and drops the sink. After it
// returns the engine no longer holds a reference into Go.
func RemoveLogSink() {
	C.louis_go_remove_log()
	setSink(nil)
}
