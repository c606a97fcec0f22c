package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_Singleton(t *testing.T) {
	first := NewLogger(Options{Level: "warn", AppEnv: "test"})
	second := NewLogger(Options{Level: "debug", AppEnv: "test"})
	require.Same(t, first, second)
}

func TestErrorWithTraceID(t *testing.T) {
	NewLogger(Options{Level: "error", AppEnv: "test"})

	traceID := ErrorWithTraceID(Fields{"request_id": "01HZX"}, "boom")
	require.Equal(t, "01HZX", traceID)

	traceID = ErrorWithTraceID(nil, "boom")
	require.Len(t, traceID, 36)

	traceID = ErrorWithTraceID(Fields{"request_id": "unknown"}, "boom")
	require.NotEqual(t, "unknown", traceID)
}
