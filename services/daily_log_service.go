package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/charlietlyons/VitaTrack-API/models"
	"github.com/charlietlyons/VitaTrack-API/store"
)

type DailyLogService struct {
	store store.Store
}

func NewDailyLogService(s store.Store) *DailyLogService {
	return &DailyLogService{store: s}
}

// PrepareDailyLog runs once per successful login: it returns today's
// log for the user, creating an empty one if the day hasn't started
// yet. Idempotent per (user, day); the unique (userId, date) index
// settles concurrent logins.
func (s *DailyLogService) PrepareDailyLog(ctx context.Context, email string) (*models.DailyLog, error) {
	var user models.User
	err := s.store.GetOneByQuery(ctx, store.UserCollection, store.Query{"email": email}, &user)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	today := models.Today()
	query := store.Query{"userId": user.ID, "date": today}

	var existing models.DailyLog
	err = s.store.GetOneByQuery(ctx, store.DailyLogCollection, query, &existing)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up daily log: %w", err)
	}

	dailyLog := models.DailyLog{
		ID:     uuid.NewString(),
		Date:   today,
		UserID: user.ID,
		Notes:  "",
	}

	err = s.store.Insert(ctx, store.DailyLogCollection, dailyLog)
	if errors.Is(err, store.ErrDuplicate) {
		// a concurrent login got there first; use its log
		if err := s.store.GetOneByQuery(ctx, store.DailyLogCollection, query, &existing); err != nil {
			return nil, fmt.Errorf("failed to fetch concurrent daily log: %w", err)
		}
		return &existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert daily log: %w", err)
	}
	return &dailyLog, nil
}
