// base.go - Shared id and timestamp columns

package models // Declares the package name

import ( // Import required packages
	"time" // Timestamps

	"github.com/google/uuid" // Document-style string ids
	"gorm.io/gorm"           // GORM hooks
)

// Base gives every record a random string id. Question and Project ids share
// one id space, so a comment's entityId never matches both kinds.
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns an id when the caller did not set one.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
