package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Payment status constants
const (
	PaymentStatusCreated    = "created"
	PaymentStatusProcessing = "processing"
	PaymentStatusSuccess    = "success"
	PaymentStatusFailed     = "failed"
)

// Payment method constants
const (
	PaymentMethodUPI  = "upi"
	PaymentMethodCard = "card"
)

// ErrInvalidTransition is returned when a payment is moved to a terminal
// state more than once.
var ErrInvalidTransition = errors.New("payment is not in processing state")

// Payment records a single attempt to pay an order. Amount and currency are
// always copied from the order at creation; the full card number and CVV are
// never stored.
type Payment struct {
	ID               string    `json:"id" gorm:"size:64;primaryKey"`
	OrderID          string    `json:"order_id" gorm:"size:64;index;not null"`
	MerchantID       uuid.UUID `json:"merchant_id" gorm:"type:uuid;not null"`
	Amount           int64     `json:"amount" gorm:"not null"`
	Currency         string    `json:"currency" gorm:"size:3;default:'INR'"`
	Method           string    `json:"method" gorm:"size:20;not null"`
	Status           string    `json:"status" gorm:"size:20;index;default:'created'"`
	VPA              string    `json:"vpa,omitempty" gorm:"size:255"`
	CardNetwork      string    `json:"card_network,omitempty" gorm:"size:20"`
	CardLast4        string    `json:"card_last4,omitempty" gorm:"size:4"`
	ErrorCode        string    `json:"error_code,omitempty" gorm:"size:50"`
	ErrorDescription string    `json:"error_description,omitempty" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsTerminal reports whether the payment has reached a final state.
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusSuccess || p.Status == PaymentStatusFailed
}

// MarkSucceeded moves a processing payment to success. The transition is
// one-way and happens exactly once.
func (p *Payment) MarkSucceeded() error {
	if p.Status != PaymentStatusProcessing {
		return ErrInvalidTransition
	}
	p.Status = PaymentStatusSuccess
	return nil
}

// MarkFailed moves a processing payment to failed and records the decline.
func (p *Payment) MarkFailed(code, description string) error {
	if p.Status != PaymentStatusProcessing {
		return ErrInvalidTransition
	}
	p.Status = PaymentStatusFailed
	p.ErrorCode = code
	p.ErrorDescription = description
	return nil
}
