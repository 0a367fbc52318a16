package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			l, err := New(Config{Level: tc.level, Format: "json"})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if !l.Core().Enabled(tc.want) {
				t.Errorf("level %v not enabled", tc.want)
			}
			if tc.want > zapcore.DebugLevel && l.Core().Enabled(tc.want-1) {
				t.Errorf("level %v enabled below configured %v", tc.want-1, tc.want)
			}
		})
	}
}

func TestNopDiscards(t *testing.T) {
	if Nop().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger reports enabled levels")
	}
}
