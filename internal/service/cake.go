package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"cake_api/internal/models"
	"cake_api/internal/repository"
	dbmodels "cake_api/internal/repository/models"
)

type CakeService struct {
	cakeRepo repository.CakeRepository
	log      zerolog.Logger
}

func NewCakeService(cakeRepo repository.CakeRepository, log zerolog.Logger) *CakeService {
	return &CakeService{
		cakeRepo: cakeRepo,
		log:      log.With().Str("component", "cake-service").Logger(),
	}
}

// GetCakes 回傳所有蛋糕，依標題升序排列
func (s *CakeService) GetCakes() (*models.CakesResponse, error) {
	cakes, err := s.cakeRepo.FindAll()
	if err != nil {
		s.log.Error().Err(err).Msg("list cakes")
		return nil, err
	}

	responses := make([]models.CakeResponse, 0, len(cakes))
	for i := range cakes {
		responses = append(responses, toCakeResponse(&cakes[i]))
	}
	slices.SortStableFunc(responses, func(a, b models.CakeResponse) int {
		return strings.Compare(a.Title, b.Title)
	})

	return &models.CakesResponse{Cakes: responses}, nil
}

func (s *CakeService) GetCakeByID(id uint) (*models.CakeResponse, error) {
	cake, err := s.findCake(id)
	if err != nil {
		return nil, err
	}

	response := toCakeResponse(cake)
	return &response, nil
}

func (s *CakeService) CreateCake(req models.CreateCakeRequest) (*models.CakeResponse, error) {
	cake := &dbmodels.Cake{
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.cakeRepo.Save(cake); err != nil {
		s.log.Error().Err(err).Msg("create cake")
		return nil, err
	}

	response := toCakeResponse(cake)
	return &response, nil
}

// UpdateCake 覆蓋既有蛋糕的標題和描述，ID 不變
func (s *CakeService) UpdateCake(id uint, req models.UpdateCakeRequest) (*models.CakeResponse, error) {
	cake, err := s.findCake(id)
	if err != nil {
		return nil, err
	}

	cake.Title = req.Title
	cake.Description = req.Description

	if err := s.cakeRepo.Save(cake); err != nil {
		s.log.Error().Err(err).Uint("cake_id", id).Msg("update cake")
		return nil, err
	}

	response := toCakeResponse(cake)
	return &response, nil
}

func (s *CakeService) DeleteCake(id uint) error {
	cake, err := s.findCake(id)
	if err != nil {
		return err
	}

	if err := s.cakeRepo.Delete(cake); err != nil {
		s.log.Error().Err(err).Uint("cake_id", id).Msg("delete cake")
		return err
	}
	return nil
}

// findCake 將 repository 的查無記錄轉換為 ErrCakeNotFound
func (s *CakeService) findCake(id uint) (*dbmodels.Cake, error) {
	cake, err := s.cakeRepo.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		s.log.Debug().Uint("cake_id", id).Msg("cake not found")
		return nil, fmt.Errorf("%w: id %d", ErrCakeNotFound, id)
	}
	if err != nil {
		s.log.Error().Err(err).Uint("cake_id", id).Msg("find cake")
		return nil, err
	}
	return cake, nil
}

func toCakeResponse(cake *dbmodels.Cake) models.CakeResponse {
	return models.CakeResponse{
		ID:          cake.ID,
		Title:       cake.Title,
		Description: cake.Description,
	}
}
