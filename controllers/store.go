package controllers

import (
	"errors"

	"github.com/Aravind-728/PayStream/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicateID is returned by InsertPayment when the generated ID lost the
// race against a concurrent insert; the caller retries with a fresh ID.
var ErrDuplicateID = errors.New("duplicate payment id")

// Store is the narrow persistence boundary the payment pipeline runs
// against. Lookups return (nil, nil) when no row matches so callers never
// depend on driver-specific not-found errors.
type Store interface {
	FindOrder(id string) (*models.Order, error)
	FindOrderOwnedBy(id string, merchantID uuid.UUID) (*models.Order, error)
	FindPayment(id string) (*models.Payment, error)
	InsertPayment(payment *models.Payment) error
	UpdatePayment(id string, fields map[string]interface{}) error
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a gorm handle in the Store interface.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindOrder(id string) (*models.Order, error) {
	var order models.Order
	err := s.db.Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *gormStore) FindOrderOwnedBy(id string, merchantID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.Where("id = ? AND merchant_id = ?", id, merchantID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *gormStore) FindPayment(id string) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Where("id = ?", id).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *gormStore) InsertPayment(payment *models.Payment) error {
	err := s.db.Create(payment).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateID
	}
	return err
}

// UpdatePayment writes terminal fields onto a payment. The status guard in
// the WHERE clause makes the processing -> terminal transition one-shot even
// if two writers raced.
func (s *gormStore) UpdatePayment(id string, fields map[string]interface{}) error {
	return s.db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, models.PaymentStatusProcessing).
		Updates(fields).Error
}
