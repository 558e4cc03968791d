package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Property status values. Area and property_type stay open strings: the
// frontend offers a fixed set but the API never enforced one.
const (
	PropertyStatusActive = "active"
	PropertyStatusDraft  = "draft"
	PropertyStatusSold   = "sold"
)

// ValidPropertyStatus reports whether s is one of active/draft/sold.
func ValidPropertyStatus(s string) bool {
	return s == PropertyStatusActive || s == PropertyStatusDraft || s == PropertyStatusSold
}

// Property is a listing record. Images are opaque base64 strings stored as a
// JSON array column.
type Property struct {
	PropertyID     uuid.UUID                   `gorm:"column:property_id;type:uuid;primaryKey" json:"id"`
	Title          string                      `gorm:"column:title;not null" json:"title"`
	Area           string                      `gorm:"column:area;not null" json:"area"`
	LocationDetail string                      `gorm:"column:location_detail;not null" json:"location_detail"`
	PriceUSD       float64                     `gorm:"column:price_usd;type:decimal(14,2);not null" json:"price_usd"`
	PropertyType   string                      `gorm:"column:property_type;not null" json:"property_type"`
	SizeSqm        float64                     `gorm:"column:size_sqm;type:decimal(10,2);not null" json:"size_sqm"`
	Bedrooms       *int                        `gorm:"column:bedrooms" json:"bedrooms"`
	Bathrooms      *int                        `gorm:"column:bathrooms" json:"bathrooms"`
	FloorLevel     *string                     `gorm:"column:floor_level" json:"floor_level"`
	ViewType       *string                     `gorm:"column:view_type" json:"view_type"`
	Description    string                      `gorm:"column:description;not null" json:"description"`
	Images         datatypes.JSONSlice[string] `gorm:"column:images" json:"images"`
	Latitude       *float64                    `gorm:"column:latitude" json:"latitude"`
	Longitude      *float64                    `gorm:"column:longitude" json:"longitude"`
	Status         string                      `gorm:"column:status;type:varchar(20);default:'active'" json:"status"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}

// BeforeCreate sets UUID if not set (for DBs without gen_random_uuid).
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.PropertyID == uuid.Nil {
		p.PropertyID = uuid.New()
	}
	return nil
}
