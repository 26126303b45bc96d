package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cake_api/internal/storage"
)

// ErrNotFound 表示依 ID 查詢不到記錄
var ErrNotFound = errors.New("record not found")

// BaseRepository 提供單一資料表的通用存取操作
type BaseRepository[T any] interface {
	FindAll() ([]T, error)
	FindByID(id uint) (*T, error)
	// Save 在主鍵為零值時新增記錄（並回填 ID），否則覆蓋該 ID 的記錄
	Save(model *T) error
	Delete(model *T) error
}

type baseRepository[T any] struct {
	db *storage.DB
}

func NewBaseRepository[T any](db *storage.DB) BaseRepository[T] {
	return &baseRepository[T]{db: db}
}

func (r *baseRepository[T]) FindAll() ([]T, error) {
	var records []T
	if err := r.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	return records, nil
}

func (r *baseRepository[T]) FindByID(id uint) (*T, error) {
	var record T
	err := r.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find by id %d: %w", id, err)
	}
	return &record, nil
}

func (r *baseRepository[T]) Save(model *T) error {
	if err := r.db.Save(model).Error; err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

func (r *baseRepository[T]) Delete(model *T) error {
	if err := r.db.Delete(model).Error; err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}
