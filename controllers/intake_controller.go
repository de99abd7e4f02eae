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

// IntakeManager is what this controller needs from the intake service.
type IntakeManager interface {
	AddIntake(ctx context.Context, email string, payload services.AddIntakePayload) (*models.Intake, error)
	GetUserIntake(ctx context.Context, email, date string) ([]models.IntakeEntry, error)
	UpdateIntake(ctx context.Context, intake models.Intake) error
	DeleteIntake(ctx context.Context, id string) error
}

type IntakeController struct {
	intakes IntakeManager
}

func NewIntakeController(intakes IntakeManager) *IntakeController {
	return &IntakeController{intakes: intakes}
}

func (ic *IntakeController) GetIntake(c *gin.Context) {
	email := c.GetString(middlewares.ContextEmail)

	date := c.Query("date")
	if date == "" {
		date = models.Today()
	}

	entries, err := ic.intakes.GetUserIntake(c.Request.Context(), email, date)
	switch {
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrDailyLogNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		slog.Error("get intake failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load intake"})
	default:
		c.JSON(http.StatusOK, entries)
	}
}

func (ic *IntakeController) AddIntake(c *gin.Context) {
	email := c.GetString(middlewares.ContextEmail)

	var payload services.AddIntakePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intake, err := ic.intakes.AddIntake(c.Request.Context(), email, payload)
	switch {
	case errors.Is(err, services.ErrInvalidPayload),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrDailyLogNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		slog.Error("add intake failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add intake"})
	default:
		c.JSON(http.StatusCreated, intake)
	}
}

func (ic *IntakeController) UpdateIntake(c *gin.Context) {
	var intake models.Intake
	if err := c.ShouldBindJSON(&intake); err != nil || intake.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intake id is required"})
		return
	}

	err := ic.intakes.UpdateIntake(c.Request.Context(), intake)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "intake not found"})
	case err != nil:
		slog.Error("update intake failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update intake"})
	default:
		c.Status(http.StatusNoContent)
	}
}

func (ic *IntakeController) DeleteIntake(c *gin.Context) {
	id := c.Param("id")

	err := ic.intakes.DeleteIntake(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "intake not found"})
	case err != nil:
		slog.Error("delete intake failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete intake"})
	default:
		c.Status(http.StatusNoContent)
	}
}
