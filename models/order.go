package models

import (
	"time"

	"github.com/google/uuid"
)

// Order status constants
const (
	OrderStatusCreated = "created"
)

// Order is created by a merchant before collecting a payment against it.
// Amount is in minor currency units (paise for INR) and must be at least 100.
type Order struct {
	ID         string                 `json:"id" gorm:"size:64;primaryKey"`
	MerchantID uuid.UUID              `json:"merchant_id" gorm:"type:uuid;index;not null"`
	Amount     int64                  `json:"amount" gorm:"not null;check:amount >= 100"`
	Currency   string                 `json:"currency" gorm:"size:3;default:'INR'"`
	Receipt    string                 `json:"receipt,omitempty" gorm:"size:255"`
	Notes      map[string]interface{} `json:"notes,omitempty" gorm:"serializer:json"`
	Status     string                 `json:"status" gorm:"size:20;default:'created'"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}
