package services

import (
	"errors"

	"smart_canteen/internal/models"
	"smart_canteen/internal/repository"

	"gorm.io/gorm"
)

// MenuCache caches a canteen's menu listing. The redis client satisfies
// this; a nil cache disables caching.
type MenuCache interface {
	GetMenu(canteenID uint) ([]models.Item, error)
	SetMenu(canteenID uint, items []models.Item) error
	InvalidateMenu(canteenID uint) error
}

// ItemUpdate carries the mutable item fields; nil means "leave as is".
type ItemUpdate struct {
	Name      *string
	Price     *float64
	Category  *string
	Image     *string
	Available *bool
}

type ItemService interface {
	AddItem(ownerID, canteenID uint, name string, price float64, category, image string) (*models.Item, error)
	GetItemsByCanteen(canteenID uint) ([]models.Item, error)
	GetAllItems() ([]models.Item, error)
	UpdateItem(ownerID, itemID uint, update ItemUpdate) (*models.Item, error)
	DeleteItem(ownerID, itemID uint) error
}

type itemService struct {
	itemRepo    repository.ItemRepository
	canteenRepo repository.CanteenRepository
	cache       MenuCache
}

func NewItemService(itemRepo repository.ItemRepository, canteenRepo repository.CanteenRepository, cache MenuCache) ItemService {
	return &itemService{itemRepo: itemRepo, canteenRepo: canteenRepo, cache: cache}
}

func (s *itemService) AddItem(ownerID, canteenID uint, name string, price float64, category, image string) (*models.Item, error) {
	if err := s.checkCanteenOwner(ownerID, canteenID); err != nil {
		return nil, err
	}

	item := &models.Item{
		CanteenID: canteenID,
		Name:      name,
		Price:     price,
		Category:  category,
		Image:     image,
		Available: true,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	s.invalidate(canteenID)
	return item, nil
}

func (s *itemService) GetItemsByCanteen(canteenID uint) ([]models.Item, error) {
	if s.cache != nil {
		if items, err := s.cache.GetMenu(canteenID); err == nil {
			return items, nil
		}
	}

	items, err := s.itemRepo.GetByCanteenID(canteenID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetMenu(canteenID, items)
	}
	return items, nil
}

func (s *itemService) GetAllItems() ([]models.Item, error) {
	return s.itemRepo.GetAll()
}

func (s *itemService) UpdateItem(ownerID, itemID uint, update ItemUpdate) (*models.Item, error) {
	item, err := s.getItem(itemID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCanteenOwner(ownerID, item.CanteenID); err != nil {
		return nil, err
	}

	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Price != nil {
		item.Price = *update.Price
	}
	if update.Category != nil {
		item.Category = *update.Category
	}
	if update.Image != nil {
		item.Image = *update.Image
	}
	if update.Available != nil {
		item.Available = *update.Available
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	s.invalidate(item.CanteenID)
	return item, nil
}

func (s *itemService) DeleteItem(ownerID, itemID uint) error {
	item, err := s.getItem(itemID)
	if err != nil {
		return err
	}
	if err := s.checkCanteenOwner(ownerID, item.CanteenID); err != nil {
		return err
	}

	if err := s.itemRepo.Delete(itemID); err != nil {
		return err
	}
	s.invalidate(item.CanteenID)
	return nil
}

func (s *itemService) getItem(itemID uint) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) checkCanteenOwner(ownerID, canteenID uint) error {
	canteen, err := s.canteenRepo.GetByID(canteenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCanteenNotFound
		}
		return err
	}
	if canteen.OwnerID != ownerID {
		return ErrNotAuthorized
	}
	return nil
}

func (s *itemService) invalidate(canteenID uint) {
	if s.cache != nil {
		_ = s.cache.InvalidateMenu(canteenID)
	}
}
