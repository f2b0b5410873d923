//go:build darwin || linux

// Shared string marshaling helpers for the purego bindings.

package obs

import "unsafe"

// cstring returns s as a NUL-terminated byte buffer suitable for passing to
// native code. Callers must keep the slice alive (runtime.KeepAlive) until
// the native call returns.
func cstring(s string) []byte {
	return append([]byte(s), 0)
}

// cstringPtr returns the address of the first byte of a cstring buffer.
func cstringPtr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

// goString copies a NUL-terminated C string into a Go string. The scan is
// unbounded; serialized settings documents can run to many megabytes.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for *(*byte)(unsafe.Pointer(ptr + uintptr(length))) != 0 {
		length++
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}
