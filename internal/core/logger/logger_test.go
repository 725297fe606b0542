package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestJSONLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, cleanup := Build(Options{Level: "warn", JSON: true, Output: zapcore.AddSync(&buf)})
	l.Info("hidden")
	l.Warn("shown", zap.String("user_id", "u1"))
	cleanup()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	require.Equal(t, "shown", rec["msg"])
	require.Equal(t, "u1", rec["user_id"])
	require.Contains(t, rec, "ts")
}

func TestBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l, cleanup := Build(Options{Level: "loud", JSON: true, Output: zapcore.AddSync(&buf)})
	l.Debug("hidden")
	l.Info("shown")
	cleanup()
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestRotateWritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	var buf bytes.Buffer
	l, cleanup := Build(Options{
		Level:  "info",
		Output: zapcore.AddSync(&buf),
		Rotate: FileRotate{Enable: true, Filename: file, MaxSizeMB: 1},
	})
	l.Info("to file")
	cleanup()

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(b), "to file")
	require.NotContains(t, string(b), "\x1b[")
}

func TestStdBridges(t *testing.T) {
	var buf bytes.Buffer
	l, cleanup := Build(Options{Level: "debug", JSON: true, Output: zapcore.AddSync(&buf)})
	defer cleanup()

	fmt.Fprintln(ToWriter(l, zapcore.DebugLevel), "[GIN-debug] route")
	std, err := ToStdLogger(l, zapcore.ErrorLevel)
	require.NoError(t, err)
	std.Print("http: TLS handshake error")

	undo := RedirectStdLog(l, zapcore.InfoLevel)
	log.Print("[db] final mysql dsn")
	undo()

	out := buf.String()
	require.Contains(t, out, "[GIN-debug] route")
	require.Contains(t, out, "TLS handshake error")
	require.Contains(t, out, "final mysql dsn")
}
