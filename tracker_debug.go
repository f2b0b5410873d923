//go:build leakcheck

package obs

import (
	"fmt"
	"runtime"
	"sync"
)

var (
	trackerMu sync.Mutex
	tracked   = make(map[uintptr]LeakRecord)
)

func callerStack(skip int) string {
	var pcs [8]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	result := ""
	for {
		frame, more := frames.Next()
		result += fmt.Sprintf("  %s:%d %s\n", frame.File, frame.Line, frame.Function)
		if !more {
			break
		}
	}
	return result
}

// trackAlloc records an acquired native handle for leak detection.
func trackAlloc(kind ResourceKind, handle uintptr) {
	if handle == 0 {
		return
	}
	trackerMu.Lock()
	defer trackerMu.Unlock()
	tracked[handle] = LeakRecord{
		Kind:  kind,
		Addr:  handle,
		Stack: callerStack(2),
	}
}

// trackFree records that a native handle has been released.
func trackFree(handle uintptr) {
	if handle == 0 {
		return
	}
	trackerMu.Lock()
	defer trackerMu.Unlock()
	delete(tracked, handle)
}

// DumpLeaks returns all tracked handles that have not been released.
// Useful in tests or at application shutdown to verify no leaks.
func DumpLeaks() []LeakRecord {
	trackerMu.Lock()
	defer trackerMu.Unlock()
	result := make([]LeakRecord, 0, len(tracked))
	for _, rec := range tracked {
		result = append(result, rec)
	}
	return result
}

// ResetTracker clears all tracking state. Useful between test runs.
func ResetTracker() {
	trackerMu.Lock()
	defer trackerMu.Unlock()
	tracked = make(map[uintptr]LeakRecord)
}

// TrackedCount returns the number of currently tracked (un-released) handles.
func TrackedCount() int {
	trackerMu.Lock()
	defer trackerMu.Unlock()
	return len(tracked)
}
