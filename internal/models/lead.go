package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead status values (closed enum).
const (
	LeadStatusPending   = "pending"
	LeadStatusContacted = "contacted"
	LeadStatusCompleted = "completed"
)

// ValidLeadStatus reports whether s is one of pending/contacted/completed.
func ValidLeadStatus(s string) bool {
	return s == LeadStatusPending || s == LeadStatusContacted || s == LeadStatusCompleted
}

// Lead is a buyer inquiry against a property. PropertyID is checked against
// an existing property at creation time only; deleting the property later
// leaves the reference dangling on purpose.
type Lead struct {
	LeadID     uuid.UUID `gorm:"column:lead_id;type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"column:property_id;type:uuid;not null" json:"property_id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	Phone      string    `gorm:"column:phone;not null" json:"phone"`
	Message    *string   `gorm:"column:message" json:"message"`
	Status     string    `gorm:"column:status;type:varchar(20);default:'pending'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Lead) TableName() string {
	return "leads"
}

// BeforeCreate sets UUID if not set (for DBs without gen_random_uuid).
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.LeadID == uuid.Nil {
		l.LeadID = uuid.New()
	}
	return nil
}
