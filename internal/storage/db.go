package storage

import (
	"fmt"

	"gorm.io/gorm"

	"cake_api/pkg/config"
)

// DB 包裝 gorm 連線，供 repository 層共用
type DB struct {
	*gorm.DB
}

// Open 依照配置中的 driver 建立資料庫連線
func Open(cfg config.DBConfig) (*DB, error) {
	switch cfg.Driver {
	case "", "postgres":
		return NewPostgresDB(cfg)
	case "sqlite":
		return NewSQLiteDB(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping 檢查資料庫是否可用
func (db *DB) Ping() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// AutoMigrate 自動建立或更新資料表結構
func (db *DB) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}
