package repository

import (
	"cake_api/internal/repository/models"
	"cake_api/internal/storage"
)

type CakeRepository interface {
	BaseRepository[models.Cake]
}

func NewCakeRepository(db *storage.DB) CakeRepository {
	return NewBaseRepository[models.Cake](db)
}
