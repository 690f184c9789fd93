package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Totarae/monuments/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Models перечисляет таблицы встроенного хранилища в порядке создания.
// Внешние ключи и уникальные индексы по lower(name) берутся из тегов моделей.
var Models = []any{
	&model.User{},
	&model.Agency{},
	&model.State{},
	&model.Monument{},
	&model.Visit{},
}

// SQLite хранит данные через gorm. Пустой path означает базу в памяти.
type SQLite struct {
	Gorm   *gorm.DB
	Logger *zap.Logger
}

// NewSQLite открывает базу и создаёт схему.
func NewSQLite(path string, logger *zap.Logger) (*SQLite, error) {
	var dsn string
	if path == "" {
		// Уникальное имя, чтобы несколько баз в одном процессе не пересекались
		dsn = fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	} else {
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc:                func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// SQLite допускает одного писателя
	sqlDB.SetMaxOpenConns(1)

	for _, m := range Models {
		if err := gdb.AutoMigrate(m); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("auto-migrate %T: %w", m, err)
		}
	}

	if path == "" {
		logger.Info("SQLite in-memory database ready")
	} else {
		logger.Info("SQLite database ready", zap.String("path", path))
	}
	return &SQLite{Gorm: gdb, Logger: logger}, nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	sqlDB, err := s.Gorm.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func (s *SQLite) Close() {
	if sqlDB, err := s.Gorm.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			s.Logger.Warn("close sqlite", zap.Error(err))
		}
	}
}
