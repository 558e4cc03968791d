package dashboard

import (
	"context"

	"aimlink-backend/internal/models"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalProperties  int64 `json:"total_properties"`
	ActiveProperties int64 `json:"active_properties"`
	DraftProperties  int64 `json:"draft_properties"`
	SoldProperties   int64 `json:"sold_properties"`
	PendingLeads     int64 `json:"pending_leads"`
	TotalLeads       int64 `json:"total_leads"`
}

// Collect runs six independent count queries. They are not wrapped in a
// transaction: under concurrent writes the counts may reflect slightly
// different points in time, which is acceptable for a dashboard.
func (s *Service) Collect(ctx context.Context) (*Stats, error) {
	var stats Stats
	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&stats.TotalProperties, s.DB.WithContext(ctx).Model(&models.Property{})},
		{&stats.ActiveProperties, s.DB.WithContext(ctx).Model(&models.Property{}).Where("status = ?", models.PropertyStatusActive)},
		{&stats.DraftProperties, s.DB.WithContext(ctx).Model(&models.Property{}).Where("status = ?", models.PropertyStatusDraft)},
		{&stats.SoldProperties, s.DB.WithContext(ctx).Model(&models.Property{}).Where("status = ?", models.PropertyStatusSold)},
		{&stats.PendingLeads, s.DB.WithContext(ctx).Model(&models.Lead{}).Where("status = ?", models.LeadStatusPending)},
		{&stats.TotalLeads, s.DB.WithContext(ctx).Model(&models.Lead{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
