package repository

import (
	"smart_canteen/internal/models"

	"gorm.io/gorm"
)

type CanteenRepository interface {
	Create(canteen *models.Canteen) error
	GetByID(id uint) (*models.Canteen, error)
	GetByOwnerID(ownerID uint) (*models.Canteen, error)
	GetAll() ([]models.Canteen, error)
}

type canteenRepository struct {
	db *gorm.DB
}

func NewCanteenRepository(db *gorm.DB) CanteenRepository {
	return &canteenRepository{db: db}
}

func (r *canteenRepository) Create(canteen *models.Canteen) error {
	return r.db.Create(canteen).Error
}

func (r *canteenRepository) GetByID(id uint) (*models.Canteen, error) {
	var canteen models.Canteen
	err := r.db.First(&canteen, id).Error
	if err != nil {
		return nil, err
	}
	return &canteen, nil
}

func (r *canteenRepository) GetByOwnerID(ownerID uint) (*models.Canteen, error) {
	var canteen models.Canteen
	err := r.db.Where("owner_id = ?", ownerID).First(&canteen).Error
	if err != nil {
		return nil, err
	}
	return &canteen, nil
}

func (r *canteenRepository) GetAll() ([]models.Canteen, error) {
	var canteens []models.Canteen
	err := r.db.Find(&canteens).Error
	return canteens, err
}
