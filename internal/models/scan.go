package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScanRecord is one completed label analysis, persisted for the scan-history
// screen. The full response payload is stored as JSON so history replays do
// not depend on the rule table staying identical across deploys.
type ScanRecord struct {
	ID          uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID      uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ProductName string           `gorm:"size:255" json:"product_name"`
	ImageURL    string           `gorm:"size:512" json:"image_url"`
	Ingredients JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	HealthScore int              `json:"health_score"`
	Grade       string           `gorm:"size:1" json:"grade"`
	SafetyLevel string           `gorm:"size:16" json:"safety_level"`
	OverallRisk string           `gorm:"size:16" json:"overall_risk"`
	ResultJSON  string           `gorm:"type:text" json:"-"`
}
