package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "catalogs" WHERE slug = 'pizza-house'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("record not found is not logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("query errors are logged with sql", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

		assert.Contains(t, buf.String(), "Database query failed")
		assert.Contains(t, buf.String(), "connection reset")
		assert.Contains(t, buf.String(), "pizza-house")
	})

	t.Run("slow queries are warned", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "Database slow query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		quiet, quietBuf := newBufferedGormLogger(false)
		quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, quietBuf.String())

		verbose, verboseBuf := newBufferedGormLogger(true)
		verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, verboseBuf.String(), "Database query")
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)

		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, baseBuf := newBufferedGormLogger(false)

	reqBuf := &bytes.Buffer{}
	reqLogger := slog.New(slog.NewJSONHandler(reqBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), `"request_id":"req-1"`)
}
