package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodconnect/backend/internal/models"
)

var defaultComplaintTemplates = []models.ComplaintTemplate{
	{
		Code:      "mislabelled-ingredients",
		Title:     "Mislabelled or undeclared ingredients",
		Authority: "Food Safety and Standards Authority of India",
		Body: "To the concerned authority,\n\n" +
			"I purchased {{product}} and found that its ingredient declaration " +
			"does not match its contents. {{description}}\n\n" +
			"I request an investigation under the applicable food labelling " +
			"regulations.\n\nSincerely,",
	},
	{
		Code:      "missing-fssai",
		Title:     "Missing food-safety licence number",
		Authority: "Food Safety and Standards Authority of India",
		Body: "To the concerned authority,\n\n" +
			"The packaged product {{product}} does not carry a visible FSSAI " +
			"licence number. {{description}}\n\n" +
			"I request verification of the manufacturer's licence status.\n\nSincerely,",
	},
	{
		Code:      "expired-product",
		Title:     "Expired or spoiled product sold",
		Authority: "Consumer Disputes Redressal Commission",
		Body: "To the concerned authority,\n\n" +
			"I was sold {{product}} past its declared expiry date or in a " +
			"spoiled condition. {{description}}\n\n" +
			"I request appropriate action against the seller.\n\nSincerely,",
	},
	{
		Code:      "false-health-claims",
		Title:     "Misleading health claims on packaging",
		Authority: "Advertising Standards Council of India",
		Body: "To the concerned authority,\n\n" +
			"The packaging of {{product}} makes health claims that are not " +
			"supported by its actual composition. {{description}}\n\n" +
			"I request a review of these claims.\n\nSincerely,",
	},
}

// SeedComplaintTemplates inserts the standard letter templates. Templates
// already present (by code) are left untouched.
func SeedComplaintTemplates(ctx context.Context, db *gorm.DB) (int, error) {
	count := 0
	for _, template := range defaultComplaintTemplates {
		var existing models.ComplaintTemplate
		err := db.WithContext(ctx).Where("code = ?", template.Code).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return count, err
		}

		template.ID = uuid.New()
		if err := db.WithContext(ctx).Create(&template).Error; err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
