package service

import (
	"github.com/rs/zerolog"

	"cake_api/internal/repository"
)

type Services struct {
	CakeService *CakeService
}

func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		CakeService: NewCakeService(repos.Cake, log),
	}
}
