package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/charlietlyons/VitaTrack-API/models"
	"github.com/charlietlyons/VitaTrack-API/store"
)

// FoodImageUploader is the slice of the S3 uploader this service needs.
// Nil disables image handling; foods then keep whatever URL the client
// sent (usually none).
type FoodImageUploader interface {
	UploadBase64Image(ctx context.Context, base64Data, filenamePrefix string) (string, error)
}

type AddFoodPayload struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
	Access      string  `json:"access"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

type FoodService struct {
	store  store.Store
	images FoodImageUploader
}

func NewFoodService(s store.Store, images FoodImageUploader) *FoodService {
	return &FoodService{store: s, images: images}
}

// AddFood builds the canonical Food record and persists it. Access is
// normalized so invalid values land on private, and an attached base64
// image is pushed to S3 before the write.
func (s *FoodService) AddFood(ctx context.Context, userID string, payload AddFoodPayload) (*models.Food, error) {
	if payload.Name == "" {
		return nil, ErrInvalidPayload
	}

	food := models.Food{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        payload.Name,
		Calories:    payload.Calories,
		Protein:     payload.Protein,
		Carbs:       payload.Carbs,
		Fat:         payload.Fat,
		ServingSize: payload.ServingSize,
		ServingUnit: payload.ServingUnit,
		Access:      models.NormalizeAccess(payload.Access),
		Description: payload.Description,
	}

	if payload.Image != "" && s.images != nil {
		url, err := s.images.UploadBase64Image(ctx, payload.Image, food.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to upload food image: %w", err)
		}
		food.ImageURL = url
	}

	if err := s.store.Insert(ctx, store.FoodCollection, food); err != nil {
		return nil, fmt.Errorf("failed to insert food: %w", err)
	}
	return &food, nil
}

// GetFoodOptions returns every public food plus the caller's own
// private foods, never another user's private records.
func (s *FoodService) GetFoodOptions(ctx context.Context, userID string) ([]models.Food, error) {
	var foods []models.Food
	err := s.store.GetManyByQuery(ctx, store.FoodCollection, []store.Query{
		{"access": models.PublicAccess},
		{"access": models.PrivateAccess, "userId": userID},
	}, &foods)
	if err != nil {
		return nil, fmt.Errorf("failed to get food options: %w", err)
	}
	if foods == nil {
		foods = []models.Food{}
	}
	return foods, nil
}

func (s *FoodService) UpdateFood(ctx context.Context, food models.Food) error {
	food.Access = models.NormalizeAccess(food.Access)
	return s.store.Patch(ctx, store.FoodCollection, food.ID, food)
}

func (s *FoodService) DeleteFood(ctx context.Context, id string) error {
	return s.store.Delete(ctx, store.FoodCollection, id)
}
