package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/geocache/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_InfoAndWarn(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Info("discovered 3 caches")
	lg.Warn("starting a fresh world")

	assert.Equal(t, "discovered 3 caches\n! starting a fresh world\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("disk full"), "failed to write saved world"), "save failed")
	lg.Error(err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "✗ Error: save failed\n"), out)
	assert.Contains(t, out, "  Caused by:")
	assert.Contains(t, out, "    → failed to write saved world")
	assert.Contains(t, out, "    → disk full")
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newBufferedLogger(t)
	lg.SetJSON(true)

	lg.Error(fmt.Errorf("collect: %w", errors.New("coin not found")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "operation failed", entry["msg"])
	assert.Equal(t, "collect: coin not found", entry["error"])

	buf.Reset()
	lg.SetJSON(false)
	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: "Error: simple error",
		},
		{
			name: "multi-line standard error",
			err:  errors.Join(errors.New("saved world is corrupt"), errors.New("duplicate cache")),
			want: "Error: saved world is corrupt\n       duplicate cache",
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(errors.New("root cause"), "outer layer"),
			want: "Error: outer layer\n\n  Caused by:\n    → root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatError(tt.err))
		})
	}
}
