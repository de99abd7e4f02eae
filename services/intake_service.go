package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/charlietlyons/VitaTrack-API/models"
	"github.com/charlietlyons/VitaTrack-API/store"
)

type AddIntakePayload struct {
	FoodID   string  `json:"foodId"`
	Quantity float64 `json:"quantity"`
}

type IntakeService struct {
	store store.Store
}

func NewIntakeService(s store.Store) *IntakeService {
	return &IntakeService{store: s}
}

// AddIntake records a consumption event against today's daily log. The
// log must already exist; it is bootstrapped at login.
func (s *IntakeService) AddIntake(ctx context.Context, email string, payload AddIntakePayload) (*models.Intake, error) {
	if payload.FoodID == "" || payload.Quantity <= 0 {
		return nil, ErrInvalidPayload
	}

	user, err := s.getUser(ctx, email)
	if err != nil {
		return nil, err
	}

	dailyLog, err := s.getDailyLog(ctx, user.ID, models.Today())
	if err != nil {
		return nil, err
	}

	intake := models.Intake{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		DayID:    dailyLog.ID,
		FoodID:   payload.FoodID,
		Quantity: payload.Quantity,
	}

	if err := s.store.Insert(ctx, store.IntakeCollection, intake); err != nil {
		return nil, fmt.Errorf("failed to insert intake: %w", err)
	}
	return &intake, nil
}

// GetUserIntake resolves user → daily log → intakes for a date, then
// joins each intake against its food to report nutrition scaled by
// quantity. One food lookup per row; fine at this scale.
func (s *IntakeService) GetUserIntake(ctx context.Context, email, date string) ([]models.IntakeEntry, error) {
	user, err := s.getUser(ctx, email)
	if err != nil {
		return nil, err
	}

	dailyLog, err := s.getDailyLog(ctx, user.ID, date)
	if err != nil {
		return nil, err
	}

	var intakes []models.Intake
	err = s.store.GetManyByQuery(ctx, store.IntakeCollection, []store.Query{
		{"userId": user.ID, "dayId": dailyLog.ID},
	}, &intakes)
	if err != nil {
		return nil, fmt.Errorf("failed to get intakes: %w", err)
	}

	entries := make([]models.IntakeEntry, 0, len(intakes))
	for _, intake := range intakes {
		var food models.Food
		err := s.store.GetOneByID(ctx, store.FoodCollection, intake.FoodID, &food)
		if errors.Is(err, store.ErrNotFound) {
			// nothing cascades deletes, so dangling food refs happen
			slog.Warn("intake references missing food", "intakeId", intake.ID, "foodId", intake.FoodID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get food for intake: %w", err)
		}

		entries = append(entries, models.IntakeEntry{
			ID:          intake.ID,
			UserID:      intake.UserID,
			FoodID:      food.ID,
			Name:        food.Name,
			Description: food.Description,
			Quantity:    intake.Quantity,
			Calories:    food.Calories * intake.Quantity,
			Protein:     food.Protein * intake.Quantity,
			Carbs:       food.Carbs * intake.Quantity,
			Fat:         food.Fat * intake.Quantity,
			ServingSize: food.ServingSize,
			ServingUnit: food.ServingUnit,
			ImageURL:    food.ImageURL,
		})
	}
	return entries, nil
}

func (s *IntakeService) UpdateIntake(ctx context.Context, intake models.Intake) error {
	return s.store.Patch(ctx, store.IntakeCollection, intake.ID, intake)
}

func (s *IntakeService) DeleteIntake(ctx context.Context, id string) error {
	return s.store.Delete(ctx, store.IntakeCollection, id)
}

func (s *IntakeService) getUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.store.GetOneByQuery(ctx, store.UserCollection, store.Query{"email": email}, &user)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

func (s *IntakeService) getDailyLog(ctx context.Context, userID, date string) (*models.DailyLog, error) {
	var dailyLog models.DailyLog
	err := s.store.GetOneByQuery(ctx, store.DailyLogCollection, store.Query{"userId": userID, "date": date}, &dailyLog)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrDailyLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up daily log: %w", err)
	}
	return &dailyLog, nil
}
