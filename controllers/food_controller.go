package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlietlyons/VitaTrack-API/middlewares"
	"github.com/charlietlyons/VitaTrack-API/models"
	"github.com/charlietlyons/VitaTrack-API/services"
	"github.com/charlietlyons/VitaTrack-API/store"
)

// FoodManager is what this controller needs from the food service.
type FoodManager interface {
	AddFood(ctx context.Context, userID string, payload services.AddFoodPayload) (*models.Food, error)
	GetFoodOptions(ctx context.Context, userID string) ([]models.Food, error)
	UpdateFood(ctx context.Context, food models.Food) error
	DeleteFood(ctx context.Context, id string) error
}

type FoodController struct {
	foods FoodManager
}

func NewFoodController(foods FoodManager) *FoodController {
	return &FoodController{foods: foods}
}

func (fc *FoodController) GetFood(c *gin.Context) {
	userID := c.GetString(middlewares.ContextUserID)

	foods, err := fc.foods.GetFoodOptions(c.Request.Context(), userID)
	if err != nil {
		slog.Error("get food options failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load foods"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) AddFood(c *gin.Context) {
	userID := c.GetString(middlewares.ContextUserID)

	var payload services.AddFoodPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := fc.foods.AddFood(c.Request.Context(), userID, payload)
	switch {
	case errors.Is(err, services.ErrInvalidPayload):
		c.JSON(http.StatusBadRequest, gin.H{"error": "food name is required"})
	case err != nil:
		slog.Error("add food failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add food"})
	default:
		c.JSON(http.StatusCreated, food)
	}
}

func (fc *FoodController) UpdateFood(c *gin.Context) {
	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil || food.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "food id is required"})
		return
	}

	err := fc.foods.UpdateFood(c.Request.Context(), food)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
	case err != nil:
		slog.Error("update food failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update food"})
	default:
		c.Status(http.StatusNoContent)
	}
}

func (fc *FoodController) DeleteFood(c *gin.Context) {
	id := c.Param("id")

	err := fc.foods.DeleteFood(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
	case err != nil:
		slog.Error("delete food failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete food"})
	default:
		c.Status(http.StatusNoContent)
	}
}
