package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/charlietlyons/VitaTrack-API/middlewares"
	"github.com/charlietlyons/VitaTrack-API/models"
	"github.com/charlietlyons/VitaTrack-API/services"
)

type mockIntakeManager struct {
	AddIntakeFunc     func(email string, payload services.AddIntakePayload) (*models.Intake, error)
	GetUserIntakeFunc func(email, date string) ([]models.IntakeEntry, error)
}

func (m *mockIntakeManager) AddIntake(_ context.Context, email string, payload services.AddIntakePayload) (*models.Intake, error) {
	if m.AddIntakeFunc != nil {
		return m.AddIntakeFunc(email, payload)
	}
	return &models.Intake{ID: "i1"}, nil
}

func (m *mockIntakeManager) GetUserIntake(_ context.Context, email, date string) ([]models.IntakeEntry, error) {
	if m.GetUserIntakeFunc != nil {
		return m.GetUserIntakeFunc(email, date)
	}
	return []models.IntakeEntry{}, nil
}

func (m *mockIntakeManager) UpdateIntake(_ context.Context, intake models.Intake) error {
	return nil
}

func (m *mockIntakeManager) DeleteIntake(_ context.Context, id string) error {
	return nil
}

func intakeRouter(intakes IntakeManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ic := NewIntakeController(intakes)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middlewares.ContextEmail, "a@b.com")
	})
	r.GET("/intake", ic.GetIntake)
	r.POST("/intake", ic.AddIntake)
	return r
}

func TestIntakeController_GetIntake(t *testing.T) {
	t.Run("passes the date query through", func(t *testing.T) {
		var gotDate string
		intakes := &mockIntakeManager{
			GetUserIntakeFunc: func(email, date string) ([]models.IntakeEntry, error) {
				gotDate = date
				return []models.IntakeEntry{{ID: "i1", Name: "Banana", Calories: 250}}, nil
			},
		}
		r := intakeRouter(intakes)

		w := performJSON(r, http.MethodGet, "/intake?date=2026-08-29", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2026-08-29", gotDate)
		assert.Contains(t, w.Body.String(), "Banana")
	})

	t.Run("defaults to today", func(t *testing.T) {
		var gotDate string
		intakes := &mockIntakeManager{
			GetUserIntakeFunc: func(email, date string) ([]models.IntakeEntry, error) {
				gotDate = date
				return nil, nil
			},
		}
		r := intakeRouter(intakes)

		performJSON(r, http.MethodGet, "/intake", "")
		assert.Equal(t, models.Today(), gotDate)
	})

	t.Run("no log is 404", func(t *testing.T) {
		intakes := &mockIntakeManager{
			GetUserIntakeFunc: func(email, date string) ([]models.IntakeEntry, error) {
				return nil, services.ErrDailyLogNotFound
			},
		}
		r := intakeRouter(intakes)

		w := performJSON(r, http.MethodGet, "/intake?date=1999-12-31", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIntakeController_AddIntake(t *testing.T) {
	t.Run("created with the caller's email", func(t *testing.T) {
		var gotEmail string
		intakes := &mockIntakeManager{
			AddIntakeFunc: func(email string, payload services.AddIntakePayload) (*models.Intake, error) {
				gotEmail = email
				return &models.Intake{ID: "i1", FoodID: payload.FoodID, Quantity: payload.Quantity}, nil
			},
		}
		r := intakeRouter(intakes)

		w := performJSON(r, http.MethodPost, "/intake", `{"foodId":"f1","quantity":2}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "a@b.com", gotEmail)
	})

	t.Run("unresolvable daily log is 400", func(t *testing.T) {
		intakes := &mockIntakeManager{
			AddIntakeFunc: func(email string, payload services.AddIntakePayload) (*models.Intake, error) {
				return nil, services.ErrDailyLogNotFound
			},
		}
		r := intakeRouter(intakes)

		w := performJSON(r, http.MethodPost, "/intake", `{"foodId":"f1","quantity":2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
