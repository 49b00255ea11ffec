package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodconnect/backend/internal/models"
	"github.com/foodconnect/backend/internal/scoring"
	"github.com/foodconnect/backend/internal/types"
)

// ProfileService assembles and updates the personalization data that feeds
// alert generation.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile returns the user's profile with all personalization sets.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.ProfileResponse, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	scoringProfile, err := s.ScoringProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &types.ProfileResponse{
		Username:            profile.Username,
		Bio:                 profile.Bio,
		ProfilePictureURL:   profile.ProfilePictureURL,
		Allergies:           scoringProfile.Allergies,
		DislikedIngredients: scoringProfile.DislikedIngredients,
		HealthConditions:    scoringProfile.HealthConditions,
		DietaryRestrictions: scoringProfile.DietaryRestrictions,
	}, nil
}

// ScoringProfile loads just the fields alert generation needs. A user with
// no rows in any table gets a zero profile, which generates no alerts.
func (s *ProfileService) ScoringProfile(ctx context.Context, userID uuid.UUID) (scoring.Profile, error) {
	var out scoring.Profile

	var allergens []models.Allergen
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&allergens).Error; err != nil {
		return out, err
	}
	for _, a := range allergens {
		out.Allergies = append(out.Allergies, a.AllergenName)
	}

	var disliked []models.DislikedIngredient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&disliked).Error; err != nil {
		return out, err
	}
	for _, d := range disliked {
		out.DislikedIngredients = append(out.DislikedIngredients, d.IngredientName)
	}

	var conditions []models.HealthCondition
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&conditions).Error; err != nil {
		return out, err
	}
	for _, c := range conditions {
		out.HealthConditions = append(out.HealthConditions, c.ConditionName)
	}

	var restrictions []models.DietaryRestriction
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&restrictions).Error; err != nil {
		return out, err
	}
	for _, r := range restrictions {
		name := r.RestrictionType
		if r.CustomName != "" {
			name = r.CustomName
		}
		out.DietaryRestrictions = append(out.DietaryRestrictions, name)
	}

	return out, nil
}

// UpdateProfile applies the partial update. Nil slices leave the
// corresponding set alone; empty slices clear it.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.ProfileResponse, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
		if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
			return nil, err
		}
	}

	if req.Allergies != nil {
		if err := s.replaceAllergens(ctx, userID, *req.Allergies); err != nil {
			return nil, err
		}
	}
	if req.DislikedIngredients != nil {
		if err := s.replaceDisliked(ctx, userID, *req.DislikedIngredients); err != nil {
			return nil, err
		}
	}
	if req.HealthConditions != nil {
		if err := s.replaceConditions(ctx, userID, *req.HealthConditions); err != nil {
			return nil, err
		}
	}
	if req.DietaryRestrictions != nil {
		if err := s.replaceRestrictions(ctx, userID, *req.DietaryRestrictions); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}

func (s *ProfileService) replaceAllergens(ctx context.Context, userID uuid.UUID, names []string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Allergen{}).Error; err != nil {
		return err
	}
	for _, name := range names {
		record := models.Allergen{
			ID:            uuid.New(),
			UserID:        userID,
			AllergenName:  name,
			SeverityLevel: 3,
		}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ProfileService) replaceDisliked(ctx context.Context, userID uuid.UUID, names []string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.DislikedIngredient{}).Error; err != nil {
		return err
	}
	for _, name := range names {
		record := models.DislikedIngredient{
			ID:             uuid.New(),
			UserID:         userID,
			IngredientName: name,
		}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ProfileService) replaceConditions(ctx context.Context, userID uuid.UUID, names []string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.HealthCondition{}).Error; err != nil {
		return err
	}
	for _, name := range names {
		record := models.HealthCondition{
			ID:            uuid.New(),
			UserID:        userID,
			ConditionName: name,
		}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *ProfileService) replaceRestrictions(ctx context.Context, userID uuid.UUID, names []string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.DietaryRestriction{}).Error; err != nil {
		return err
	}
	for _, name := range names {
		record := models.DietaryRestriction{
			ID:              uuid.New(),
			UserID:          userID,
			RestrictionType: name,
		}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}
