package recover_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	recoverpkg "github.com/rskv-p/kata/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logBuf bytes.Buffer

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	recoverpkg.SetLogger(zerolog.New(&logBuf))
	os.Exit(m.Run())
}

// lastEntry decodes the last JSON line written to logBuf.
func lastEntry(t *testing.T) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(logBuf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestRecoverWithContext(t *testing.T) {
	logBuf.Reset()

	func() {
		defer recoverpkg.RecoverWithContext("batch", "line", map[string]any{"line": 1})
		panic("test1")
	}()

	entry := lastEntry(t)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "batch", entry["service"])
	assert.Equal(t, "line", entry["function"])
	assert.Equal(t, "panic: test1", entry["message"])
	assert.Equal(t, "map[line:1]", entry["context"])
	assert.NotEmpty(t, entry["stack"])
}

func TestRecoverWithContext_NoPanic(t *testing.T) {
	logBuf.Reset()
	func() {
		defer recoverpkg.RecoverWithContext("cli", "Execute", nil)
	}()
	assert.Empty(t, logBuf.String())
}

func TestRecoverExplicit(t *testing.T) {
	logBuf.Reset()
	recoverpkg.RecoverExplicit("svc2", "fn2", "manual", nil)

	entry := lastEntry(t)
	assert.Equal(t, "svc2", entry["service"])
	assert.Equal(t, "fn2", entry["function"])
	assert.Equal(t, "panic: manual", entry["message"])
	assert.NotContains(t, entry, "context")
}

func TestRecoverExplicit_Nil(t *testing.T) {
	logBuf.Reset()
	recoverpkg.RecoverExplicit("svc", "fn", nil, nil)
	assert.Empty(t, logBuf.String())
}

func TestWrapRecover_NoPanic(t *testing.T) {
	sentinel := errors.New("plain error")
	f := recoverpkg.WrapRecover("svc", "fn", func(ctx context.Context) error {
		return sentinel
	})
	assert.ErrorIs(t, f(context.Background()), sentinel)
}

func TestWrapRecover_Panic(t *testing.T) {
	logBuf.Reset()
	f := recoverpkg.WrapRecover("batch", "kth", func(ctx context.Context) error {
		var m map[string]int
		m["boom"] = 1
		return nil
	})

	err := f(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered in batch.kth")
	assert.Equal(t, "kth", lastEntry(t)["function"])
}
