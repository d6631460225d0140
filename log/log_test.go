package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.config.level != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.config.level)
	}
	if logger.config.caller {
		t.Error("expected caller info disabled by default")
	}
	if logger.config.format != FormatJSON {
		t.Errorf("expected default format JSON, got %v", logger.config.format)
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()
	logger2 := Make(&buf, WithLevel(LevelError))
	logger2.Info("info message")
	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger2.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Make_WithTimeLayout_SetsLayout(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		contains string
	}{
		{"rfc3339 named", "RFC3339", "T"},
		{"rfc3339 nano named", "RFC3339Nano", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf, WithTimeLayout(tt.layout), WithPretty(false))
			logger.Info("test")

			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf(
					"expected time format to contain %q, got: %s",
					tt.contains,
					output,
				)
			}
		})
	}
}

func TestLogger_Make_WithCaller_IncludesSourceInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithCaller(true), WithPretty(false))
	logger.Info("test message")

	output := buf.String()
	if !strings.Contains(output, "source") {
		t.Error("caller info not included when enabled")
	}

	buf.Reset()
	logger2 := Make(&buf, WithCaller(false), WithPretty(false))
	logger2.Info("test message")

	output = buf.String()
	if strings.Contains(output, "source") {
		t.Error("caller info included when disabled")
	}
}

func TestLogger_Make_WithFormat_SetsOutputFormat(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))
		logger.Info("json test", slog.String("key", "value"))

		var decoded map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("expected valid JSON output, got error: %v", err)
		}
		if decoded["msg"] != "json test" {
			t.Errorf("expected msg field, got %v", decoded["msg"])
		}
		if decoded["key"] != "value" {
			t.Errorf("expected key attribute, got %v", decoded["key"])
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithFormat(FormatText), WithPretty(false))
		logger.Info("text test", slog.String("key", "value"))

		output := buf.String()
		if !strings.Contains(output, "text test") {
			t.Errorf("expected message in text output, got: %s", output)
		}
		if !strings.Contains(output, "key=value") {
			t.Errorf("expected attribute in text output, got: %s", output)
		}
	})
}

func TestLogger_ZeroValue_IsNoOp(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("dropped")
	logger.Error("dropped")

	if got := logger.Level(); got != DefaultLevel {
		t.Errorf("expected zero logger Level %v, got %v", DefaultLevel, got)
	}
	if got := logger.Format(); got != DefaultFormat {
		t.Errorf("expected zero logger Format %v, got %v", DefaultFormat, got)
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelError))

	wrapped := logger.Wrap(WithLevel(LevelDebug))

	wrapped.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("wrapped logger did not honor overridden level")
	}

	buf.Reset()
	logger.Debug("hidden")
	if buf.Len() > 0 {
		t.Error("original logger affected by Wrap")
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(false)).
		With(slog.String("component", "scan"))

	logger.Info("attributed")

	output := buf.String()
	if !strings.Contains(output, "component") ||
		!strings.Contains(output, "scan") {
		t.Errorf("expected persistent attribute in output, got: %s", output)
	}
}

func TestLogger_Trace_BelowDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false))

	logger.Trace("trace message")
	if !strings.Contains(buf.String(), "trace message") {
		t.Error("trace message not logged at Trace level")
	}
	if !strings.Contains(strings.ToUpper(buf.String()), "TRACE") {
		t.Errorf("expected TRACE level marker, got: %s", buf.String())
	}

	buf.Reset()
	logger2 := Make(&buf, WithLevel(LevelDebug), WithPretty(false))
	logger2.Trace("suppressed")
	if buf.Len() > 0 {
		t.Error("trace message logged when level is Debug")
	}
}
