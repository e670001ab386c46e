package models

import (
	"time"

	"github.com/google/uuid"
)

// Merchant represents an onboarded merchant account. API credentials are
// presented on every request; the secret is stored as a bcrypt hash and is
// never returned in responses.
type Merchant struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	Email         string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	APIKey        string    `json:"-" gorm:"size:64;uniqueIndex;not null"`
	APISecretHash string    `json:"-" gorm:"size:128;not null"`
	WebhookURL    string    `json:"webhook_url,omitempty" gorm:"type:text"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
