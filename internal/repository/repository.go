package repository

import (
	"cake_api/internal/repository/models"
	"cake_api/internal/storage"
)

type Repositories struct {
	Cake CakeRepository
}

func NewRepositories(db *storage.DB) *Repositories {
	return &Repositories{
		Cake: NewCakeRepository(db),
	}
}

// Models 回傳需要建立資料表的所有持久化模型
func Models() []interface{} {
	return []interface{}{&models.Cake{}}
}
