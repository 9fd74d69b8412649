package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithWriter_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "loud", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewWithWriter(&bytes.Buffer{}, tt.level)
			if l.GetLevel() != tt.want {
				t.Errorf("Expected level %s, got %s", tt.want, l.GetLevel())
			}
		})
	}
}

func TestNewWithWriter_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")

	l.Info().Str("round", "coding").Msg("round completed")

	out := buf.String()
	if !strings.Contains(out, `"round":"coding"`) || !strings.Contains(out, `"message":"round completed"`) {
		t.Errorf("Unexpected log output: %s", out)
	}
}

func TestFromFormat_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := FromFormat("json", "warn", &buf)

	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("Info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"message":"kept"`) {
		t.Errorf("Expected JSON warn line, got: %s", out)
	}
}

func TestFromFormat_ConsoleIgnoresJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	l := FromFormat("console", "info", &buf)

	l.Info().Msg("to stderr")

	if buf.Len() != 0 {
		t.Errorf("Console logger should not write to the JSON writer, got: %s", buf.String())
	}
}
