package models

import (
	"time"

	"github.com/google/uuid"
)

// IngredientEntry mirrors one scoring rule-table record in the database for
// the food-database browse screen. The classifier itself always uses the
// compiled-in table; this copy exists only so the frontend can page and
// filter without shipping the whole table.
type IngredientEntry struct {
	ID            uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CanonicalName string           `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Aliases       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"aliases"`
	Category      string           `gorm:"size:20;not null;index" json:"category"`
	RiskTier      string           `gorm:"size:10;not null;index" json:"risk"`
	AllergenTags  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"allergen_tags"`
	Description   string           `gorm:"type:text" json:"description"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
