package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"smart_canteen/internal/models"
	"smart_canteen/internal/repository"

	"gorm.io/gorm"
)

// CartLine is one client-submitted cart entry. Only the item reference
// and quantity are taken from the client; name and price always come
// from the catalog.
type CartLine struct {
	ItemID   uint `json:"item_id"`
	Quantity int  `json:"quantity"`
}

type OrderService interface {
	// PlaceOrder splits the cart into one order per canteen, prices
	// each from the catalog, assigns daily tokens and persists all of
	// them atomically. Returns the created orders and the combined
	// token string shown to the customer.
	PlaceOrder(userID uint, cart []CartLine) ([]*models.Order, string, error)
	GetMyOrders(userID uint) ([]models.Order, error)
	GetCanteenOrders(ownerID, canteenID uint) ([]models.Order, error)
	UpdateOrderStatus(ownerID, orderID uint, status models.OrderStatus) (*models.Order, error)
	UpdatePaymentStatus(ownerID, orderID uint, status models.PaymentStatus) (*models.Order, error)
	PurgeCanteenOrders(ownerID, canteenID uint) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	itemRepo    repository.ItemRepository
	canteenRepo repository.CanteenRepository
	now         func() time.Time
}

// NewOrderService wires the order workflow. A nil now defaults to
// time.Now; tests inject a fixed clock to pin the token day.
func NewOrderService(orderRepo repository.OrderRepository, itemRepo repository.ItemRepository, canteenRepo repository.CanteenRepository, now func() time.Time) OrderService {
	if now == nil {
		now = time.Now
	}
	return &orderService{orderRepo: orderRepo, itemRepo: itemRepo, canteenRepo: canteenRepo, now: now}
}

func (s *orderService) PlaceOrder(userID uint, cart []CartLine) ([]*models.Order, string, error) {
	if len(cart) == 0 {
		return nil, "", ErrEmptyCart
	}

	// Resolve every line against the catalog before writing anything,
	// grouping by the owning canteen in first-seen order.
	var canteenIDs []uint
	lines := make(map[uint][]models.OrderLine)
	totals := make(map[uint]float64)

	for i, cartLine := range cart {
		if cartLine.Quantity < 1 {
			return nil, "", fmt.Errorf("line %d: %w", i+1, ErrInvalidQuantity)
		}

		item, err := s.itemRepo.GetByID(cartLine.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, "", fmt.Errorf("line %d (item %d): %w", i+1, cartLine.ItemID, ErrItemNotFound)
			}
			return nil, "", err
		}
		if !item.Available {
			return nil, "", fmt.Errorf("line %d (%s): %w", i+1, item.Name, ErrItemUnavailable)
		}

		if _, seen := lines[item.CanteenID]; !seen {
			canteenIDs = append(canteenIDs, item.CanteenID)
		}
		lines[item.CanteenID] = append(lines[item.CanteenID], models.OrderLine{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  cartLine.Quantity,
			Image:     item.Image,
		})
		totals[item.CanteenID] += item.Price * float64(cartLine.Quantity)
	}

	orders := make([]*models.Order, 0, len(canteenIDs))
	for _, canteenID := range canteenIDs {
		orders = append(orders, &models.Order{
			UserID:        userID,
			CanteenID:     canteenID,
			Items:         lines[canteenID],
			TotalPrice:    totals[canteenID],
			OrderStatus:   models.OrderPreparing,
			PaymentStatus: models.PaymentPending,
		})
	}

	day := s.now().Format("2006-01-02")
	if err := s.orderRepo.CreateAll(orders, day); err != nil {
		return nil, "", err
	}

	tokens := make([]string, len(orders))
	for i, order := range orders {
		tokens[i] = strconv.Itoa(order.Token)
	}
	return orders, strings.Join(tokens, ", "), nil
}

func (s *orderService) GetMyOrders(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

func (s *orderService) GetCanteenOrders(ownerID, canteenID uint) ([]models.Order, error) {
	if err := s.checkCanteenOwner(ownerID, canteenID); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByCanteenID(canteenID)
}

func (s *orderService) UpdateOrderStatus(ownerID, orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatusValue
	}

	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCanteenOwner(ownerID, order.CanteenID); err != nil {
		return nil, err
	}

	if !order.OrderStatus.CanTransitionTo(status) {
		return nil, fmt.Errorf("%s to %s: %w", order.OrderStatus, status, ErrInvalidTransition)
	}

	order.OrderStatus = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) UpdatePaymentStatus(ownerID, orderID uint, status models.PaymentStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatusValue
	}

	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCanteenOwner(ownerID, order.CanteenID); err != nil {
		return nil, err
	}

	// Payment moves one way: Pending -> Paid.
	if order.PaymentStatus != models.PaymentPending || status != models.PaymentPaid {
		return nil, fmt.Errorf("%s to %s: %w", order.PaymentStatus, status, ErrInvalidTransition)
	}

	order.PaymentStatus = status
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) PurgeCanteenOrders(ownerID, canteenID uint) error {
	if err := s.checkCanteenOwner(ownerID, canteenID); err != nil {
		return err
	}
	return s.orderRepo.DeleteByCanteenID(canteenID)
}

func (s *orderService) getOrder(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) checkCanteenOwner(ownerID, canteenID uint) error {
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
