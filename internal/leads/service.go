package leads

import (
	"context"

	"aimlink-backend/internal/models"
	"aimlink-backend/internal/properties"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxListResults = 1000

// Service handles buyer inquiries. Properties is needed for the referential
// check at creation; after that the reference is never re-validated.
type Service struct {
	DB         *gorm.DB
	Properties *properties.Service
}

type CreateLeadInput struct {
	PropertyID string
	Name       string
	Phone      string
	Message    *string
}

// Create records an inquiry against an existing property. The property id
// must parse and resolve; errors mirror the property getter's own split
// (properties.ErrInvalidID / properties.ErrNotFound).
func (s *Service) Create(ctx context.Context, in CreateLeadInput) (*models.Lead, error) {
	property, err := s.Properties.GetByID(ctx, in.PropertyID)
	if err != nil {
		return nil, err
	}
	lead := &models.Lead{
		PropertyID: property.PropertyID,
		Name:       in.Name,
		Phone:      in.Phone,
		Message:    in.Message,
		Status:     models.LeadStatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(lead).Error; err != nil {
		return nil, err
	}
	return lead, nil
}

type ListFilters struct {
	Status string
}

func (s *Service) List(ctx context.Context, f ListFilters) ([]models.Lead, error) {
	q := s.DB.WithContext(ctx).Model(&models.Lead{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var list []models.Lead
	if err := q.Order("created_at DESC").Limit(maxListResults).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateStatus moves a lead through the pending/contacted/completed pipeline.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*models.Lead, error) {
	if !models.ValidLeadStatus(status) {
		return nil, ErrInvalidStatus
	}
	leadID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var lead models.Lead
	if err := s.DB.WithContext(ctx).Where("lead_id = ?", leadID).First(&lead).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	lead.Status = status
	if err := s.DB.WithContext(ctx).Save(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}
