package logger

import (
	"log/slog"
	"unicode/utf8"
)

// maxInputLen caps how much raw user input ends up in a log record.
const maxInputLen = 64

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Input records raw user input under the key "input", truncated to a safe length.
func Input(raw string) slog.Attr {
	if utf8.RuneCountInString(raw) > maxInputLen {
		raw = string([]rune(raw)[:maxInputLen]) + "…"
	}
	return slog.String("input", raw)
}

// Numeral records a numeral's canonical and decimal forms under the key "numeral".
func Numeral(roman string, decimal int) slog.Attr {
	return Group("numeral",
		slog.String("roman", roman),
		slog.Int("decimal", decimal),
	)
}

// Code records a machine-readable error code under the key "code".
func Code(code string) slog.Attr {
	return slog.String("code", code)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Mode records the run mode under the key "mode".
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}
