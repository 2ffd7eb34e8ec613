package chartsdk

import (
	"context"
	"log/slog"
)

// FormatResult is the outcome of a formatting call. Value is always usable;
// Unresolved marks values that fell back because the input, format or date
// number type was not recognised.
type FormatResult struct {
	Value      string
	Unresolved bool
	Reason     string
	Input      any
}

func resolved(value string) FormatResult {
	return FormatResult{Value: value}
}

func unresolved(value, reason string, input any, attrs ...slog.Attr) FormatResult {
	all := append([]slog.Attr{slog.Any("input", input)}, attrs...)
	logger().LogAttrs(context.Background(), slog.LevelWarn, reason, all...)
	return FormatResult{
		Value:      value,
		Unresolved: true,
		Reason:     reason,
		Input:      input,
	}
}
