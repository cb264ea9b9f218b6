package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/accounts-api/internal/domain/ports"
)

// Consultas acima deste tempo são registradas como lentas
const slowQueryThreshold = 200 * time.Millisecond

// GormLogger encaminha os logs do GORM para o ports.Logger da aplicação
type GormLogger struct {
	log   ports.Logger
	level logger.LogLevel
}

// NewGormLogger cria o adaptador com nível Warn (erros e consultas lentas)
func NewGormLogger(log ports.Logger) logger.Interface {
	return &GormLogger{
		log:   log.With("component", "gorm"),
		level: logger.Warn,
	}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Info {
		l.log.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Warn {
		l.log.Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Error {
		l.log.Error(fmt.Sprintf(msg, args...))
	}
}

// Trace registra cada consulta; not found não é tratado como erro
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Error("query failed", "error", err, "elapsed", elapsed, "rows", rows, "sql", sql)
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		l.log.Warn("slow query", "elapsed", elapsed, "rows", rows, "sql", sql)
	case l.level >= logger.Info:
		sql, rows := fc()
		l.log.Debug("query", "elapsed", elapsed, "rows", rows, "sql", sql)
	}
}
