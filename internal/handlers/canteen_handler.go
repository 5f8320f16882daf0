package handlers

import (
	"net/http"

	"smart_canteen/internal/middleware"
	"smart_canteen/internal/services"

	"github.com/gin-gonic/gin"
)

type CanteenHandler struct {
	canteenService services.CanteenService
}

func NewCanteenHandler(canteenService services.CanteenService) *CanteenHandler {
	return &CanteenHandler{canteenService: canteenService}
}

func (h *CanteenHandler) AddCanteen(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Place       string `json:"place" binding:"required"`
		OpeningTime string `json:"openingTime" binding:"required"`
		ClosingTime string `json:"closingTime" binding:"required"`
		Image       string `json:"image"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid canteen data"})
		return
	}

	canteen, err := h.canteenService.AddCanteen(middleware.UserID(c), req.Name, req.Place, req.OpeningTime, req.ClosingTime, req.Image)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, canteen)
}

func (h *CanteenHandler) GetCanteens(c *gin.Context) {
	canteens, err := h.canteenService.GetCanteens()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, canteens)
}

func (h *CanteenHandler) GetMyCanteen(c *gin.Context) {
	canteen, err := h.canteenService.GetMyCanteen(middleware.UserID(c))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, canteen)
}
