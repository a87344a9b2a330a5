package log

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Sync() error { return nil }

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestZapLogger(t *testing.T) {
	newBufferedLogger := func(conf Config) (Logger, *syncBuffer) {
		buf := &syncBuffer{}
		return NewZapLogger(conf, zapcore.AddSync(buf)), buf
	}

	t.Run("Writes structured messages", func(t *testing.T) {
		lg, buf := newBufferedLogger(Config{Format: "logfmt", Level: LevelDebug})

		lg.Info("transaction submitted", "txHash", "0xabc")
		out := buf.String()
		assert.Contains(t, out, "transaction submitted")
		assert.Contains(t, out, "0xabc")
	})

	t.Run("Respects level filtering", func(t *testing.T) {
		lg, buf := newBufferedLogger(Config{Format: "json", Level: LevelWarn})

		lg.Debug("hidden")
		lg.Info("also hidden")
		lg.Warn("visible")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "visible")
	})

	t.Run("WithKV carries context", func(t *testing.T) {
		lg, buf := newBufferedLogger(Config{Format: "logfmt", Level: LevelInfo})

		lg.WithKV("chainID", 421614).Info("connected")
		assert.Contains(t, buf.String(), "421614")
	})

	t.Run("WithName names the logger", func(t *testing.T) {
		lg, _ := newBufferedLogger(Config{})
		named := lg.WithName("client").WithName("channels")
		assert.Equal(t, "client.channels", named.Name())
	})
}

func TestNoopLogger(t *testing.T) {
	lg := NewNoopLogger()
	require.NotNil(t, lg)

	// Must never panic, whatever is thrown at it.
	lg.Debug("msg")
	lg.Info("msg", "key")
	lg.Warn("msg", "key", "value")
	lg.Error("msg", "key", struct{}{})
	assert.Equal(t, "noop", lg.WithKV("k", "v").WithName("x").Name())
}
