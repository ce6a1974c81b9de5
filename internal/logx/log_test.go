package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/termcaps/internal/logx"
)

func newProv(buf *bytes.Buffer, lvl slog.Level) logx.LoggerProvider {
	h := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: lvl})
	return logx.Prov(slog.New(h))
}

func TestDebugRespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logx.Debug(`hidden`, newProv(buf, slog.LevelInfo))
	assert.Empty(t, buf.String())

	logx.Debug(`shown`, newProv(buf, slog.LevelDebug), `program`, `kitty`)
	assert.Contains(t, buf.String(), `msg=shown`)
	assert.Contains(t, buf.String(), `program=kitty`)
}

func TestIsErrJoined(t *testing.T) {
	buf := &bytes.Buffer{}
	prov := newProv(buf, slog.LevelDebug)
	assert.False(t, logx.IsErr(nil, prov, slog.LevelWarn))
	err := errors.Join(errors.New(`first`), errors.New(`second`))
	assert.True(t, logx.IsErr(err, prov, slog.LevelWarn))
	assert.Contains(t, buf.String(), `msg=first`)
	assert.Contains(t, buf.String(), `msg=second`)
}

func TestNilProvider(t *testing.T) {
	assert.NotPanics(t, func() {
		logx.Info(`x`, nil)
		logx.Warn(`x`, logx.Prov(nil))
	})
	assert.True(t, logx.IsErr(errors.New(`x`), nil, slog.LevelError))
}
