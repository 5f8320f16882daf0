package services

import (
	"fmt"
	"sort"

	"smart_canteen/internal/models"

	"gorm.io/gorm"
)

// In-memory fakes behind the repository interfaces.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCanteenRepo struct {
	nextID   uint
	canteens map[uint]*models.Canteen
}

func newFakeCanteenRepo() *fakeCanteenRepo {
	return &fakeCanteenRepo{canteens: make(map[uint]*models.Canteen)}
}

func (r *fakeCanteenRepo) Create(canteen *models.Canteen) error {
	r.nextID++
	canteen.ID = r.nextID
	r.canteens[canteen.ID] = canteen
	return nil
}

func (r *fakeCanteenRepo) GetByID(id uint) (*models.Canteen, error) {
	canteen, ok := r.canteens[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return canteen, nil
}

func (r *fakeCanteenRepo) GetByOwnerID(ownerID uint) (*models.Canteen, error) {
	for _, canteen := range r.canteens {
		if canteen.OwnerID == ownerID {
			return canteen, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCanteenRepo) GetAll() ([]models.Canteen, error) {
	var out []models.Canteen
	for _, canteen := range r.canteens {
		out = append(out, *canteen)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCanteenRepo) add(ownerID uint, name string) *models.Canteen {
	canteen := &models.Canteen{
		OwnerID:     ownerID,
		Name:        name,
		Place:       "Main Block",
		OpeningTime: "08:00",
		ClosingTime: "20:00",
	}
	r.Create(canteen)
	return canteen
}

type fakeItemRepo struct {
	nextID uint
	items  map[uint]*models.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uint]*models.Item)}
}

func (r *fakeItemRepo) Create(item *models.Item) error {
	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(id uint) (*models.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepo) GetByCanteenID(canteenID uint) ([]models.Item, error) {
	var out []models.Item
	for _, item := range r.items {
		if item.CanteenID == canteenID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeItemRepo) GetAll() ([]models.Item, error) {
	var out []models.Item
	for _, item := range r.items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeItemRepo) Update(item *models.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeItemRepo) Delete(id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) add(canteenID uint, name string, price float64, available bool) *models.Item {
	item := &models.Item{
		CanteenID: canteenID,
		Name:      name,
		Price:     price,
		Category:  "Snacks",
		Image:     "img.jpg",
		Available: available,
	}
	r.Create(item)
	return item
}

type fakeOrderRepo struct {
	nextID   uint
	orders   map[uint]*models.Order
	counters map[string]int // "canteenID:day" -> last token
	created  []uint         // insertion order, newest-last
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   make(map[uint]*models.Order),
		counters: make(map[string]int),
	}
}

func (r *fakeOrderRepo) CreateAll(orders []*models.Order, day string) error {
	for _, order := range orders {
		key := fmt.Sprintf("%d:%s", order.CanteenID, day)
		r.counters[key]++
		order.Token = r.counters[key]

		r.nextID++
		order.ID = r.nextID
		r.orders[order.ID] = order
		r.created = append(r.created, order.ID)
	}
	return nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) GetByUserID(userID uint) ([]models.Order, error) {
	var out []models.Order
	for i := len(r.created) - 1; i >= 0; i-- {
		order := r.orders[r.created[i]]
		if order != nil && order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByCanteenID(canteenID uint) ([]models.Order, error) {
	var out []models.Order
	for i := len(r.created) - 1; i >= 0; i-- {
		order := r.orders[r.created[i]]
		if order != nil && order.CanteenID == canteenID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) DeleteByCanteenID(canteenID uint) error {
	for id, order := range r.orders {
		if order.CanteenID == canteenID {
			delete(r.orders, id)
		}
	}
	return nil
}

type fakeMenuCache struct {
	menus       map[uint][]models.Item
	invalidated []uint
	setCalls    int
}

func newFakeMenuCache() *fakeMenuCache {
	return &fakeMenuCache{menus: make(map[uint][]models.Item)}
}

func (c *fakeMenuCache) GetMenu(canteenID uint) ([]models.Item, error) {
	items, ok := c.menus[canteenID]
	if !ok {
		return nil, fmt.Errorf("menu not cached")
	}
	return items, nil
}

func (c *fakeMenuCache) SetMenu(canteenID uint, items []models.Item) error {
	c.setCalls++
	c.menus[canteenID] = items
	return nil
}

func (c *fakeMenuCache) InvalidateMenu(canteenID uint) error {
	delete(c.menus, canteenID)
	c.invalidated = append(c.invalidated, canteenID)
	return nil
}
