package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLevel("debug"))
	assert.Equal(t, gormlogger.Warn, GormLevel("info"))
	assert.Equal(t, gormlogger.Warn, GormLevel("warn"))
	assert.Equal(t, gormlogger.Error, GormLevel("error"))
}

func TestGormLogger_Trace(t *testing.T) {
	statement := func() (string, int64) { return "SELECT * FROM shifts", 1 }

	tests := []struct {
		name    string
		level   gormlogger.LogLevel
		begin   time.Time
		err     error
		wantMsg string
	}{
		{name: "query error", level: gormlogger.Warn, begin: time.Now(), err: errors.New("no such table"), wantMsg: "query failed"},
		{name: "record not found is quiet", level: gormlogger.Warn, begin: time.Now(), err: gormlogger.ErrRecordNotFound},
		{name: "slow query", level: gormlogger.Warn, begin: time.Now().Add(-time.Second), wantMsg: "slow query"},
		{name: "fast query below info", level: gormlogger.Warn, begin: time.Now()},
		{name: "fast query at info", level: gormlogger.Info, begin: time.Now(), wantMsg: "query"},
		{name: "silent", level: gormlogger.Silent, begin: time.Now(), err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			l := NewGormLogger(zap.New(core), tt.level)

			l.Trace(context.Background(), tt.begin, statement, tt.err)

			if tt.wantMsg == "" {
				assert.Zero(t, logs.Len())
				return
			}
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.wantMsg, entry.Message)
			assert.Equal(t, "store", entry.LoggerName)
			assert.Equal(t, "SELECT * FROM shifts", entry.ContextMap()["sql"])
		})
	}
}

func TestGormLogger_LogModeCopies(t *testing.T) {
	l := NewGormLogger(nil, gormlogger.Warn)

	quiet := l.LogMode(gormlogger.Silent)

	assert.Equal(t, gormlogger.Warn, l.logLevel)
	assert.Equal(t, gormlogger.Silent, quiet.(*GormLogger).logLevel)
}
