package logging

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevelToZapLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		level    string
		expected zapcore.Level
	}{
		{name: "debug", level: "DEBUG", expected: zapcore.DebugLevel},
		{name: "warning", level: " warning ", expected: zapcore.WarnLevel},
		{name: "error", level: "error", expected: zapcore.ErrorLevel},
		{name: "unknown", level: "loud", expected: zapcore.InfoLevel},
	}
	for _, test := range tests {
		if got := levelToZapLevel(test.level); got != test.expected {
			t.Errorf("%s: levelToZapLevel, got: %v, expected: %v", test.name, got, test.expected)
		}
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	if FromContext(context.Background()) != DefaultLogger() {
		t.Errorf("FromContext without logger must return the default logger")
	}
	logger := NewLogger("debug", true)
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Errorf("FromContext must return the attached logger")
	}
}
