package models

import "time"

// Cake 是持久化的蛋糕記錄，ID 由資料庫在建立時分配
type Cake struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
