//go:build darwin || linux

package obs

import (
	"runtime"
	"strings"
	"testing"
)

func TestCString(t *testing.T) {
	buf := cstring("hello")
	if len(buf) != 6 {
		t.Fatalf("len(cstring(\"hello\")) = %d, want 6", len(buf))
	}
	if buf[5] != 0 {
		t.Error("cstring buffer is not NUL terminated")
	}
	if string(buf[:5]) != "hello" {
		t.Errorf("cstring content = %q, want %q", buf[:5], "hello")
	}

	empty := cstring("")
	if len(empty) != 1 || empty[0] != 0 {
		t.Errorf("cstring(\"\") = %v, want single NUL", empty)
	}
}

func TestGoString(t *testing.T) {
	tests := []string{
		"",
		"a",
		"hello world",
		"with unicode éè中文",
		strings.Repeat("x", 8192),
	}
	for _, want := range tests {
		buf := cstring(want)
		got := goString(cstringPtr(buf))
		runtime.KeepAlive(buf)
		if got != want {
			t.Errorf("goString round trip = %q, want %q", got, want)
		}
	}
}

func TestGoStringNilPointer(t *testing.T) {
	if got := goString(0); got != "" {
		t.Errorf("goString(0) = %q, want \"\"", got)
	}
}

// FuzzCStringRoundTrip checks that any NUL-free Go string survives the trip
// through the C representation unchanged.
// Run with: go test -fuzz=FuzzCStringRoundTrip -fuzztime=30s
func FuzzCStringRoundTrip(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"scene name",
		"json {\"a\": 1}",
		"unicode é中文",
		strings.Repeat("long", 1024),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		if strings.ContainsRune(s, 0) {
			t.Skip("C strings cannot contain NUL")
		}
		buf := cstring(s)
		got := goString(cstringPtr(buf))
		runtime.KeepAlive(buf)
		if got != s {
			t.Errorf("round trip = %q, want %q", got, s)
		}
	})
}
