package handlers

import (
	"net/http"
	"strconv"

	"smart_canteen/internal/middleware"
	"smart_canteen/internal/services"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	itemService services.ItemService
}

func NewItemHandler(itemService services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func (h *ItemHandler) AddItem(c *gin.Context) {
	var req struct {
		CanteenID uint    `json:"canteen_id" binding:"required"`
		Name      string  `json:"name" binding:"required"`
		Price     float64 `json:"price" binding:"required,gt=0"`
		Category  string  `json:"category" binding:"required"`
		Image     string  `json:"image" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item data"})
		return
	}

	item, err := h.itemService.AddItem(middleware.UserID(c), req.CanteenID, req.Name, req.Price, req.Category, req.Image)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) GetItemsByCanteen(c *gin.Context) {
	canteenID, err := parseID(c.Param("canteenId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid canteen id"})
		return
	}

	items, err := h.itemService.GetItemsByCanteen(canteenID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetAllItems(c *gin.Context) {
	items, err := h.itemService.GetAllItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req struct {
		Name      *string  `json:"name"`
		Price     *float64 `json:"price"`
		Category  *string  `json:"category"`
		Image     *string  `json:"image"`
		Available *bool    `json:"available"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item data"})
		return
	}

	item, err := h.itemService.UpdateItem(middleware.UserID(c), itemID, services.ItemUpdate{
		Name:      req.Name,
		Price:     req.Price,
		Category:  req.Category,
		Image:     req.Image,
		Available: req.Available,
	})
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	if err := h.itemService.DeleteItem(middleware.UserID(c), itemID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
