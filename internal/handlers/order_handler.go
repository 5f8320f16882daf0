package handlers

import (
	"net/http"

	"smart_canteen/internal/middleware"
	"smart_canteen/internal/models"
	"smart_canteen/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req struct {
		Items []services.CartLine `json:"items"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	orders, token, err := h.orderService.PlaceOrder(middleware.UserID(c), req.Items)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Orders placed successfully",
		"orders":  orders,
		"token":   token,
	})
}

func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	orders, err := h.orderService.GetMyOrders(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetCanteenOrders(c *gin.Context) {
	canteenID, err := parseID(c.Param("canteenId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid canteen id"})
		return
	}

	orders, err := h.orderService.GetCanteenOrders(middleware.UserID(c), canteenID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateOrderStatus(middleware.UserID(c), orderID, models.OrderStatus(req.Status))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	orderID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdatePaymentStatus(middleware.UserID(c), orderID, models.PaymentStatus(req.Status))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteAllOrders(c *gin.Context) {
	canteenID, err := parseID(c.Param("canteenId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid canteen id"})
		return
	}

	if err := h.orderService.PurgeCanteenOrders(middleware.UserID(c), canteenID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "All orders deleted"})
}
