package services

import (
	"errors"

	"smart_canteen/internal/models"
	"smart_canteen/internal/repository"

	"gorm.io/gorm"
)

type CanteenService interface {
	AddCanteen(ownerID uint, name, place, openingTime, closingTime, image string) (*models.Canteen, error)
	GetCanteens() ([]models.Canteen, error)
	GetMyCanteen(ownerID uint) (*models.Canteen, error)
}

type canteenService struct {
	canteenRepo repository.CanteenRepository
}

func NewCanteenService(canteenRepo repository.CanteenRepository) CanteenService {
	return &canteenService{canteenRepo: canteenRepo}
}

func (s *canteenService) AddCanteen(ownerID uint, name, place, openingTime, closingTime, image string) (*models.Canteen, error) {
	// One canteen per owner.
	_, err := s.canteenRepo.GetByOwnerID(ownerID)
	if err == nil {
		return nil, ErrCanteenExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if image == "" {
		image = models.DefaultCanteenImage
	}

	canteen := &models.Canteen{
		OwnerID:     ownerID,
		Name:        name,
		Place:       place,
		OpeningTime: openingTime,
		ClosingTime: closingTime,
		Image:       image,
	}
	if err := s.canteenRepo.Create(canteen); err != nil {
		return nil, err
	}
	return canteen, nil
}

func (s *canteenService) GetCanteens() ([]models.Canteen, error) {
	return s.canteenRepo.GetAll()
}

func (s *canteenService) GetMyCanteen(ownerID uint) (*models.Canteen, error) {
	canteen, err := s.canteenRepo.GetByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCanteenNotFound
		}
		return nil, err
	}
	return canteen, nil
}
