//go:build darwin || linux

package obs

import (
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogrusLevelFor(t *testing.T) {
	tests := []struct {
		level int32
		want  logrus.Level
	}{
		{50, logrus.ErrorLevel},
		{logError, logrus.ErrorLevel},
		{150, logrus.WarnLevel},
		{logWarning, logrus.WarnLevel},
		{250, logrus.InfoLevel},
		{logInfo, logrus.InfoLevel},
		{350, logrus.DebugLevel},
		{logDebug, logrus.DebugLevel},
		{1000, logrus.DebugLevel},
	}
	for _, tt := range tests {
		if got := logrusLevelFor(tt.level); got != tt.want {
			t.Errorf("logrusLevelFor(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestFormatLogLineNoArgs(t *testing.T) {
	// With no va_list the format string passes through unexpanded.
	buf := cstring("plain message")
	got := formatLogLine(cstringPtr(buf), 0)
	runtime.KeepAlive(buf)
	if got != "plain message" {
		t.Errorf("formatLogLine = %q, want %q", got, "plain message")
	}

	if got := formatLogLine(0, 0); got != "" {
		t.Errorf("formatLogLine(0, 0) = %q, want \"\"", got)
	}
}

func TestRedirectLogs(t *testing.T) {
	if !IsAvailable() {
		if err := RedirectLogs(nil); err == nil {
			t.Error("RedirectLogs succeeded without libobs")
		}
		t.Skip("libobs not available")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	if err := RedirectLogs(logger); err != nil {
		t.Fatalf("RedirectLogs = %v", err)
	}
	// Swapping the destination must not reinstall the native handler.
	installed := logCallback
	if err := RedirectLogs(nil); err != nil {
		t.Fatalf("second RedirectLogs = %v", err)
	}
	if logCallback != installed {
		t.Error("RedirectLogs reinstalled the native callback")
	}
}
