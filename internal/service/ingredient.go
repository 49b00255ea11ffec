package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodconnect/backend/internal/models"
	"github.com/foodconnect/backend/internal/scoring"
)

// IngredientService serves the food-database browse screen from the
// persisted mirror of the classifier's rule table.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// ListIngredients pages through the ingredient database with optional
// category, risk tier and name filters.
func (s *IngredientService) ListIngredients(ctx context.Context, category, risk, search string, limit, offset int) ([]models.IngredientEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := s.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if risk != "" {
		query = query.Where("risk_tier = ?", risk)
	}
	if search != "" {
		query = query.Where("LOWER(canonical_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var entries []models.IngredientEntry
	if err := query.Order("canonical_name ASC").Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// SeedIngredients mirrors the compiled-in rule table into the database.
// Existing rows are matched by canonical name and updated in place, so
// reseeding after a table change is safe.
func (s *IngredientService) SeedIngredients(ctx context.Context) (int, error) {
	count := 0
	for _, record := range scoring.Table() {
		var existing models.IngredientEntry
		err := s.db.WithContext(ctx).Where("canonical_name = ?", record.CanonicalName).First(&existing).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return count, err
		}

		entry := models.IngredientEntry{
			ID:            existing.ID,
			CanonicalName: record.CanonicalName,
			Aliases:       models.JSONBStringArray(record.Aliases),
			Category:      string(record.Category),
			RiskTier:      string(record.RiskTier),
			AllergenTags:  models.JSONBStringArray(record.AllergenTags),
			Description:   record.Description,
		}
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}

		if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
