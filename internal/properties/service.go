package properties

import (
	"context"

	"aimlink-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maxListResults caps unbounded listing queries.
const maxListResults = 1000

type Service struct {
	DB *gorm.DB
}

type CreatePropertyInput struct {
	Title          string
	Area           string
	LocationDetail string
	PriceUSD       float64
	PropertyType   string
	SizeSqm        float64
	Bedrooms       *int
	Bathrooms      *int
	FloorLevel     *string
	ViewType       *string
	Description    string
	Images         []string
	Latitude       *float64
	Longitude      *float64
	Status         string
}

func (s *Service) Create(ctx context.Context, in CreatePropertyInput) (*models.Property, error) {
	status := in.Status
	if status == "" {
		status = models.PropertyStatusActive
	}
	if !models.ValidPropertyStatus(status) {
		return nil, ErrInvalidStatus
	}
	if in.PriceUSD < 0 {
		return nil, ErrNegativePrice
	}
	if in.SizeSqm < 0 {
		return nil, ErrNegativeSize
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	property := &models.Property{
		Title:          in.Title,
		Area:           in.Area,
		LocationDetail: in.LocationDetail,
		PriceUSD:       in.PriceUSD,
		PropertyType:   in.PropertyType,
		SizeSqm:        in.SizeSqm,
		Bedrooms:       in.Bedrooms,
		Bathrooms:      in.Bathrooms,
		FloorLevel:     in.FloorLevel,
		ViewType:       in.ViewType,
		Description:    in.Description,
		Images:         datatypes.NewJSONSlice(images),
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		Status:         status,
	}
	if err := s.DB.WithContext(ctx).Create(property).Error; err != nil {
		return nil, err
	}
	return property, nil
}

// GetByID resolves a raw id string to a property. A malformed id is
// ErrInvalidID, a missing row ErrNotFound. Also used by the leads service for
// its referential check.
func (s *Service) GetByID(ctx context.Context, id string) (*models.Property, error) {
	propertyID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var property models.Property
	if err := s.DB.WithContext(ctx).Where("property_id = ?", propertyID).First(&property).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// ListFilters are ANDed; zero values mean "not supplied" except Status, which
// the handler defaults to "active" when the query param is absent.
type ListFilters struct {
	Area         string
	PropertyType string
	Status       string
	MinPrice     *float64
	MaxPrice     *float64
}

func (s *Service) List(ctx context.Context, f ListFilters) ([]models.Property, error) {
	q := s.DB.WithContext(ctx).Model(&models.Property{})
	if f.Area != "" {
		q = q.Where("area = ?", f.Area)
	}
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MinPrice != nil {
		q = q.Where("price_usd >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_usd <= ?", *f.MaxPrice)
	}
	var list []models.Property
	if err := q.Order("created_at DESC").Limit(maxListResults).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdatePropertyInput is a patch: nil fields are left untouched, everything
// else overwrites the stored value.
type UpdatePropertyInput struct {
	Title          *string
	Area           *string
	LocationDetail *string
	PriceUSD       *float64
	PropertyType   *string
	SizeSqm        *float64
	Bedrooms       *int
	Bathrooms      *int
	FloorLevel     *string
	ViewType       *string
	Description    *string
	Images         *[]string
	Latitude       *float64
	Longitude      *float64
	Status         *string
}

func (in UpdatePropertyInput) empty() bool {
	return in.Title == nil && in.Area == nil && in.LocationDetail == nil &&
		in.PriceUSD == nil && in.PropertyType == nil && in.SizeSqm == nil &&
		in.Bedrooms == nil && in.Bathrooms == nil && in.FloorLevel == nil &&
		in.ViewType == nil && in.Description == nil && in.Images == nil &&
		in.Latitude == nil && in.Longitude == nil && in.Status == nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdatePropertyInput) (*models.Property, error) {
	if in.empty() {
		return nil, ErrEmptyUpdate
	}
	if in.Status != nil && !models.ValidPropertyStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}
	if in.PriceUSD != nil && *in.PriceUSD < 0 {
		return nil, ErrNegativePrice
	}
	if in.SizeSqm != nil && *in.SizeSqm < 0 {
		return nil, ErrNegativeSize
	}

	property, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		property.Title = *in.Title
	}
	if in.Area != nil {
		property.Area = *in.Area
	}
	if in.LocationDetail != nil {
		property.LocationDetail = *in.LocationDetail
	}
	if in.PriceUSD != nil {
		property.PriceUSD = *in.PriceUSD
	}
	if in.PropertyType != nil {
		property.PropertyType = *in.PropertyType
	}
	if in.SizeSqm != nil {
		property.SizeSqm = *in.SizeSqm
	}
	if in.Bedrooms != nil {
		property.Bedrooms = in.Bedrooms
	}
	if in.Bathrooms != nil {
		property.Bathrooms = in.Bathrooms
	}
	if in.FloorLevel != nil {
		property.FloorLevel = in.FloorLevel
	}
	if in.ViewType != nil {
		property.ViewType = in.ViewType
	}
	if in.Description != nil {
		property.Description = *in.Description
	}
	if in.Images != nil {
		property.Images = datatypes.NewJSONSlice(*in.Images)
	}
	if in.Latitude != nil {
		property.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		property.Longitude = in.Longitude
	}
	if in.Status != nil {
		property.Status = *in.Status
	}

	if err := s.DB.WithContext(ctx).Save(property).Error; err != nil {
		return nil, err
	}
	return property, nil
}

// Delete hard-deletes. Leads referencing the property are left alone; their
// property_id goes dangling.
func (s *Service) Delete(ctx context.Context, id string) error {
	propertyID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}
	res := s.DB.WithContext(ctx).Where("property_id = ?", propertyID).Delete(&models.Property{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
