package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplaintTemplate is a static consumer-rights letter template, seeded at
// deploy time.
type ComplaintTemplate struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Code      string    `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Authority string    `gorm:"size:255" json:"authority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Complaint is a filled-in template referencing an optional scan.
type Complaint struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	UserID       uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	TemplateCode string         `gorm:"size:50;not null" json:"template_code"`
	ScanID       *uuid.UUID     `gorm:"type:varchar(36)" json:"scan_id,omitempty"`
	ProductName  string         `gorm:"size:255;not null" json:"product_name"`
	Description  string         `gorm:"type:text" json:"description"`
	Status       string         `gorm:"size:20;not null;default:'draft'" json:"status"`
}

// Complaint statuses.
const (
	ComplaintStatusDraft     = "draft"
	ComplaintStatusSubmitted = "submitted"
	ComplaintStatusResolved  = "resolved"
)
