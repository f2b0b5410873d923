//go:build darwin || linux

package obs

import (
	"runtime"
	"strings"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

// libobs log levels from util/base.h. Severity rises as the number falls.
const (
	logError   int32 = 100
	logWarning int32 = 200
	logInfo    int32 = 300
	logDebug   int32 = 400
)

// libobs expands log lines into a 4096-byte buffer; match it.
const logLineSize = 4096

var (
	logMu       sync.Mutex
	logOut      *logrus.Logger
	logCallback uintptr

	vsnprintfOnce sync.Once
	vsnprintf     func(buf, size, format, args uintptr) int32
)

// loadVsnprintf binds libc's vsnprintf for expanding native format strings.
// When libc cannot be bound the bridge falls back to logging the unexpanded
// format string.
func loadVsnprintf() {
	vsnprintfOnce.Do(func() {
		defer func() { _ = recover() }()
		path := "libc.so.6"
		if runtime.GOOS == "darwin" {
			path = "/usr/lib/libSystem.B.dylib"
		}
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			return
		}
		purego.RegisterLibFunc(&vsnprintf, handle, "vsnprintf")
	})
}

// logrusLevelFor maps a libobs log level to the logrus level it reports at.
// In-between values (plugins may log at, say, 250) take the level of the
// next threshold above them, so 250 reports as info.
func logrusLevelFor(level int32) logrus.Level {
	switch {
	case level <= logError:
		return logrus.ErrorLevel
	case level <= logWarning:
		return logrus.WarnLevel
	case level <= logInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

// formatLogLine expands a printf-style format with its native va_list. The
// va_list reaches the handler as a pointer-shaped value on every supported
// GOOS/GOARCH combination, so it can be handed straight to vsnprintf.
func formatLogLine(format, args uintptr) string {
	loadVsnprintf()
	if vsnprintf == nil || args == 0 {
		return goString(format)
	}
	buf := make([]byte, logLineSize)
	n := vsnprintf(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), format, args)
	runtime.KeepAlive(buf)
	if n < 0 {
		return goString(format)
	}
	if int(n) >= len(buf) {
		n = int32(len(buf) - 1)
	}
	return string(buf[:n])
}

func obsLogHandler(level int32, format, args, param uintptr) {
	logMu.Lock()
	logger := logOut
	logMu.Unlock()
	if logger == nil {
		return
	}
	line := strings.TrimRight(formatLogLine(format, args), "\n")
	logger.Log(logrusLevelFor(level), line)
}

// RedirectLogs routes libobs log output to a logrus logger, replacing the
// default stderr handler. A nil logger selects logrus.StandardLogger().
// The native handler stays installed for the life of the process; calling
// RedirectLogs again only swaps the destination logger.
func RedirectLogs(logger *logrus.Logger) error {
	if err := Load(); err != nil {
		return err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	logMu.Lock()
	defer logMu.Unlock()
	logOut = logger
	if logCallback == 0 {
		logCallback = purego.NewCallback(obsLogHandler)
		baseSetLogHandler(logCallback, 0)
	}
	return nil
}
