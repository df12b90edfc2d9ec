package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"eventpulse/config"
	deliverycontext "eventpulse/internal/delivery/context"
	"eventpulse/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func sqlAndRows() (string, int64) {
	return "SELECT * FROM events", 3
}

func TestGormSlogLogger_Trace(t *testing.T) {
	base, buf := newBufferLogger()
	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at warn level")

	l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "connection reset")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_DebugLogsEveryQueryWithRequestLogger(t *testing.T) {
	base, baseBuf := newBufferLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newGormSlogLogger(base, cfg)

	requestLogger, requestBuf := newBufferLogger()
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger.With(slog.String("request_id", "req-9")))

	l.Trace(ctx, time.Now(), sqlAndRows, nil)

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, requestBuf.String(), "request_id=req-9")
	assert.Contains(t, requestBuf.String(), "rows=3")
}

func TestPoolMonitor_Observe(t *testing.T) {
	base, buf := newBufferLogger()
	m := &poolMonitor{logger: base}

	m.observe(context.Background(), sql.DBStats{WaitCount: 2}, sql.DBStats{WaitCount: 2})
	assert.Empty(t, buf.String())

	m.observe(context.Background(),
		sql.DBStats{WaitCount: 2, WaitDuration: 0},
		sql.DBStats{WaitCount: 4, WaitDuration: 100 * time.Millisecond},
	)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "avgWait=50ms")
}
