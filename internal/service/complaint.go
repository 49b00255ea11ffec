package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodconnect/backend/internal/models"
	"github.com/foodconnect/backend/internal/types"
)

var (
	ErrUnknownTemplate        = errors.New("unknown complaint template")
	ErrInvalidScanID          = errors.New("invalid scan id")
	ErrScanNotFound           = errors.New("scan not found")
	ErrInvalidComplaintStatus = errors.New("invalid complaint status")
)

// ComplaintService manages consumer-rights complaints built from seeded
// letter templates.
type ComplaintService struct {
	db *gorm.DB
}

func NewComplaintService(db *gorm.DB) *ComplaintService {
	return &ComplaintService{db: db}
}

// ListTemplates returns every seeded letter template.
func (s *ComplaintService) ListTemplates(ctx context.Context) ([]models.ComplaintTemplate, error) {
	var templates []models.ComplaintTemplate
	if err := s.db.WithContext(ctx).Order("code ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// CreateComplaint fills a template for a product and saves it as a draft.
func (s *ComplaintService) CreateComplaint(ctx context.Context, userID uuid.UUID, req *types.CreateComplaintRequest) (*models.Complaint, error) {
	var template models.ComplaintTemplate
	if err := s.db.WithContext(ctx).Where("code = ?", req.TemplateCode).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w %q", ErrUnknownTemplate, req.TemplateCode)
		}
		return nil, err
	}

	complaint := models.Complaint{
		ID:           uuid.New(),
		UserID:       userID,
		TemplateCode: template.Code,
		ProductName:  req.ProductName,
		Description:  req.Description,
		Status:       models.ComplaintStatusDraft,
	}

	if req.ScanID != "" {
		scanID, err := uuid.Parse(req.ScanID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidScanID, req.ScanID)
		}
		var scan models.ScanRecord
		if err := s.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", scanID, userID).
			First(&scan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrScanNotFound, scanID)
			}
			return nil, err
		}
		complaint.ScanID = &scanID
	}

	if err := s.db.WithContext(ctx).Create(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// RenderLetter fills the template body with the complaint's details.
// Placeholders are {{product}} and {{description}}.
func (s *ComplaintService) RenderLetter(ctx context.Context, userID, complaintID uuid.UUID) (string, error) {
	complaint, err := s.GetComplaint(ctx, userID, complaintID)
	if err != nil {
		return "", err
	}

	var template models.ComplaintTemplate
	if err := s.db.WithContext(ctx).Where("code = ?", complaint.TemplateCode).First(&template).Error; err != nil {
		return "", err
	}

	letter := strings.ReplaceAll(template.Body, "{{product}}", complaint.ProductName)
	letter = strings.ReplaceAll(letter, "{{description}}", complaint.Description)
	return letter, nil
}

func (s *ComplaintService) ListComplaints(ctx context.Context, userID uuid.UUID) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (s *ComplaintService) GetComplaint(ctx context.Context, userID, complaintID uuid.UUID) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", complaintID, userID).
		First(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// UpdateStatus moves a complaint through draft, submitted and resolved.
func (s *ComplaintService) UpdateStatus(ctx context.Context, userID, complaintID uuid.UUID, status string) error {
	switch status {
	case models.ComplaintStatusDraft, models.ComplaintStatusSubmitted, models.ComplaintStatusResolved:
	default:
		return fmt.Errorf("%w %q", ErrInvalidComplaintStatus, status)
	}

	result := s.db.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ? AND user_id = ?", complaintID, userID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
