package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Idea represents a user-submitted idea.
type Idea struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Summary     string    `json:"summary" gorm:"size:512;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Tags        TagList   `json:"tags" gorm:"type:json;serializer:json"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Owner reference, preloaded when the response expands it. Kept in the
	// JSON form so the idea cache round-trips it.
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Idea) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
