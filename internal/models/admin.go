package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is the single privileged account able to mutate properties and leads.
// Provisioned at startup (see auth.Service.EnsureAdmin), never via the API.
type Admin struct {
	AdminID      uuid.UUID `gorm:"column:admin_id;type:uuid;primaryKey" json:"admin_id"`
	Email        string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}

// BeforeCreate sets UUID if not set (for DBs without gen_random_uuid).
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.AdminID == uuid.Nil {
		a.AdminID = uuid.New()
	}
	return nil
}
