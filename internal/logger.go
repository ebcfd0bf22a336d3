package internal

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"paygate/entity"
	"paygate/services"
)

// Logger writes structured log lines through zap; warnings and errors are
// copied to the database sink when one is set.
type Logger struct {
	category string
	log      *zap.Logger
	database services.Database
}

func NewLogger(category string, debug bool, database services.Database) *Logger {
	conf := zap.NewProductionConfig()
	conf.Encoding = "console"
	conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	conf.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	conf.DisableStacktrace = true
	conf.Sampling = nil
	if debug {
		conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := conf.Build()
	if err != nil {
		log = zap.NewNop()
	}
	return newLogger(category, log, database)
}

func newLogger(category string, log *zap.Logger, database services.Database) *Logger {
	return &Logger{
		category: category,
		log:      log.Named(category),
		database: database,
	}
}

func (l *Logger) Debug(text string) {
	l.log.Debug(text)
}

func (l *Logger) Info(text string) {
	l.log.Info(text)
}

func (l *Logger) Warn(text string) {
	l.log.Warn(text)
	l.write("warn", text, nil)
}

func (l *Logger) Error(text string, err error) {
	l.log.Error(text, zap.Error(err))
	l.write("error", text, err)
}

func (l *Logger) Sync() {
	_ = l.log.Sync()
}

func (l *Logger) write(level string, text string, err error) {
	if l.database == nil {
		return
	}
	message := &entity.LogMessage{
		Time:     time.Now(),
		Level:    level,
		Category: l.category,
		Text:     text,
	}
	if err != nil {
		message.Error = err.Error()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if e := l.database.WriteLogMessage(ctx, message); e != nil {
		l.log.Warn("write log message", zap.Error(e))
	}
}
