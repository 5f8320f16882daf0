package repository

import (
	"smart_canteen/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateAll persists every order in a single transaction, assigning
	// each its daily token for the given day. Either all orders are
	// created or none.
	CreateAll(orders []*models.Order, day string) error
	GetByID(id uint) (*models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	GetByCanteenID(canteenID uint) ([]models.Order, error)
	Update(order *models.Order) error
	DeleteByCanteenID(canteenID uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateAll(orders []*models.Order, day string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, order := range orders {
			token, err := nextToken(tx, order.CanteenID, day)
			if err != nil {
				return err
			}
			order.Token = token
			if err := tx.Create(order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// nextToken atomically increments the (canteen, day) counter and
// returns the new value. The upsert keeps concurrent placements from
// ever reading the same token.
func nextToken(tx *gorm.DB, canteenID uint, day string) (int, error) {
	var value int
	err := tx.Raw(`
		INSERT INTO token_counters (canteen_id, day, value)
		VALUES (?, ?, 1)
		ON CONFLICT (canteen_id, day)
		DO UPDATE SET value = token_counters.value + 1
		RETURNING value`, canteenID, day).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByCanteenID(canteenID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("canteen_id = ?", canteenID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) DeleteByCanteenID(canteenID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Order{}).Where("canteen_id = ?", canteenID).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("order_id IN ?", ids).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Where("canteen_id = ?", canteenID).Delete(&models.Order{}).Error
	})
}
