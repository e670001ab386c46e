package controllers

import (
	"testing"
	"time"

	"github.com/Aravind-728/PayStream/models"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store for pipeline tests.
type fakeStore struct {
	orders          map[string]models.Order
	payments        map[string]*models.Payment
	insertConflicts int
	inserts         int
}

func newFakeStore(orders ...models.Order) *fakeStore {
	s := &fakeStore{
		orders:   make(map[string]models.Order),
		payments: make(map[string]*models.Payment),
	}
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func (s *fakeStore) FindOrder(id string) (*models.Order, error) {
	if o, ok := s.orders[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (s *fakeStore) FindOrderOwnedBy(id string, merchantID uuid.UUID) (*models.Order, error) {
	if o, ok := s.orders[id]; ok && o.MerchantID == merchantID {
		return &o, nil
	}
	return nil, nil
}

func (s *fakeStore) FindPayment(id string) (*models.Payment, error) {
	if p, ok := s.payments[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (s *fakeStore) InsertPayment(payment *models.Payment) error {
	s.inserts++
	if s.insertConflicts > 0 {
		s.insertConflicts--
		return ErrDuplicateID
	}
	if _, ok := s.payments[payment.ID]; ok {
		return ErrDuplicateID
	}
	cp := *payment
	s.payments[payment.ID] = &cp
	return nil
}

func (s *fakeStore) UpdatePayment(id string, fields map[string]interface{}) error {
	p, ok := s.payments[id]
	if !ok || p.Status != models.PaymentStatusProcessing {
		// mirrors the gorm store's status-guarded UPDATE: no matching row
		// is not an error, it just writes nothing
		return nil
	}
	if v, ok := fields["status"]; ok {
		p.Status = v.(string)
	}
	if v, ok := fields["error_code"]; ok {
		p.ErrorCode = v.(string)
	}
	if v, ok := fields["error_description"]; ok {
		p.ErrorDescription = v.(string)
	}
	return nil
}

func instantSimulator(success bool) *utils.SettlementSimulator {
	return utils.NewSettlementSimulator(utils.SettlementConfig{
		TestMode:     true,
		FixedDelay:   0,
		FixedSuccess: success,
	})
}

var (
	testMerchant  = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	otherMerchant = uuid.MustParse("650e8400-e29b-41d4-a716-446655440001")
)

func testOrder() models.Order {
	return models.Order{
		ID:         "order_abcDEF1234567890",
		MerchantID: testMerchant,
		Amount:     54900,
		Currency:   "INR",
		Status:     models.OrderStatusCreated,
	}
}

func upiRequest() PaymentRequest {
	return PaymentRequest{
		OrderID: "order_abcDEF1234567890",
		Method:  models.PaymentMethodUPI,
		VPA:     "ramesh.kumar@okicici",
	}
}

func cardRequest() PaymentRequest {
	return PaymentRequest{
		OrderID: "order_abcDEF1234567890",
		Method:  models.PaymentMethodCard,
		Card: &CardDetails{
			Number:      "4111 1111 1111 1111",
			ExpiryMonth: "12",
			ExpiryYear:  "2099",
			CVV:         "123",
			HolderName:  "Ramesh Kumar",
		},
	}
}

func TestProcessPaymentUPISuccess(t *testing.T) {
	store := newFakeStore(testOrder())

	payment, perr := ProcessPayment(store, instantSimulator(true), &testMerchant, upiRequest(), MerchantAPIProfile)
	require.Nil(t, perr)
	require.NotNil(t, payment)

	assert.Regexp(t, `^pay_[A-Za-z0-9]{16}$`, payment.ID)
	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)
	assert.Equal(t, "ramesh.kumar@okicici", payment.VPA)
	assert.Empty(t, payment.ErrorCode)

	// amount and currency come from the order, never from the client
	assert.Equal(t, int64(54900), payment.Amount)
	assert.Equal(t, "INR", payment.Currency)
	assert.Equal(t, testMerchant, payment.MerchantID)

	stored := store.payments[payment.ID]
	require.NotNil(t, stored)
	assert.Equal(t, models.PaymentStatusSuccess, stored.Status)
}

func TestProcessPaymentCardDerivesNetworkAndLast4(t *testing.T) {
	store := newFakeStore(testOrder())

	payment, perr := ProcessPayment(store, instantSimulator(true), &testMerchant, cardRequest(), MerchantAPIProfile)
	require.Nil(t, perr)

	assert.Equal(t, utils.NetworkVisa, payment.CardNetwork)
	assert.Equal(t, "1111", payment.CardLast4)
	assert.Empty(t, payment.VPA)
}

func TestProcessPaymentDeclineUsesProfileDescription(t *testing.T) {
	store := newFakeStore(testOrder())

	payment, perr := ProcessPayment(store, instantSimulator(false), &testMerchant, upiRequest(), MerchantAPIProfile)
	require.Nil(t, perr)
	assert.Equal(t, models.PaymentStatusFailed, payment.Status)
	assert.Equal(t, utils.ErrCodePaymentFailed, payment.ErrorCode)
	assert.Equal(t, "Bank declined transaction", payment.ErrorDescription)

	store = newFakeStore(testOrder())
	payment, perr = ProcessPayment(store, instantSimulator(false), nil, upiRequest(), PublicCheckoutProfile)
	require.Nil(t, perr)
	assert.Equal(t, models.PaymentStatusFailed, payment.Status)
	assert.Equal(t, "Declined", payment.ErrorDescription)

	stored := store.payments[payment.ID]
	require.NotNil(t, stored)
	assert.Equal(t, models.PaymentStatusFailed, stored.Status)
	assert.Equal(t, utils.ErrCodePaymentFailed, stored.ErrorCode)
}

func TestProcessPaymentUnknownOrderPersistsNothing(t *testing.T) {
	store := newFakeStore()

	payment, perr := ProcessPayment(store, instantSimulator(true), &testMerchant, upiRequest(), MerchantAPIProfile)
	assert.Nil(t, payment)
	require.NotNil(t, perr)
	assert.Equal(t, 404, perr.Status)
	assert.Equal(t, utils.ErrCodeNotFound, perr.Code)
	assert.Empty(t, store.payments)
	assert.Zero(t, store.inserts)
}

func TestProcessPaymentOrderOwnedByAnotherMerchant(t *testing.T) {
	store := newFakeStore(testOrder())

	_, perr := ProcessPayment(store, instantSimulator(true), &otherMerchant, upiRequest(), MerchantAPIProfile)
	require.NotNil(t, perr)
	assert.Equal(t, utils.ErrCodeNotFound, perr.Code)
	assert.Empty(t, store.payments)

	// the public path has no ownership scoping
	payment, perr := ProcessPayment(store, instantSimulator(true), nil, upiRequest(), PublicCheckoutProfile)
	require.Nil(t, perr)
	assert.Equal(t, testMerchant, payment.MerchantID)
}

func TestProcessPaymentValidationFailuresPersistNothing(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*PaymentRequest)
		wantCode string
	}{
		{"missing vpa", func(r *PaymentRequest) { r.Method = models.PaymentMethodUPI; r.VPA = ""; r.Card = nil }, utils.ErrCodeInvalidVPA},
		{"malformed vpa", func(r *PaymentRequest) { r.Method = models.PaymentMethodUPI; r.VPA = "user@@bank"; r.Card = nil }, utils.ErrCodeInvalidVPA},
		{"missing card", func(r *PaymentRequest) { r.Method = models.PaymentMethodCard; r.Card = nil }, utils.ErrCodeBadRequest},
		{"luhn failure", func(r *PaymentRequest) { r.Card.Number = "4111111111111112" }, utils.ErrCodeInvalidCard},
		{"expired card", func(r *PaymentRequest) { r.Card.ExpiryYear = "2020" }, utils.ErrCodeExpiredCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(testOrder())
			req := cardRequest()
			tt.mutate(&req)

			payment, perr := ProcessPayment(store, instantSimulator(true), &testMerchant, req, MerchantAPIProfile)
			assert.Nil(t, payment)
			require.NotNil(t, perr)
			assert.Equal(t, 400, perr.Status)
			assert.Equal(t, tt.wantCode, perr.Code)
			assert.Empty(t, store.payments, "no payment row may exist after a validation failure")
		})
	}
}

func TestPublicProfileSkipsExpiryCheck(t *testing.T) {
	store := newFakeStore(testOrder())
	req := cardRequest()
	req.Card.ExpiryYear = "2020"

	payment, perr := ProcessPayment(store, instantSimulator(true), nil, req, PublicCheckoutProfile)
	require.Nil(t, perr, "the public checkout historically accepts expired cards")
	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)
}

func TestProcessPaymentRetriesOnIDConflict(t *testing.T) {
	store := newFakeStore(testOrder())
	store.insertConflicts = 2

	payment, perr := ProcessPayment(store, instantSimulator(true), &testMerchant, upiRequest(), MerchantAPIProfile)
	require.Nil(t, perr)
	assert.Equal(t, 3, store.inserts)
	assert.Len(t, store.payments, 1)
	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)
}

func TestProcessPaymentHonorsConfiguredDelay(t *testing.T) {
	store := newFakeStore(testOrder())
	sim := utils.NewSettlementSimulator(utils.SettlementConfig{
		TestMode:     true,
		FixedDelay:   50 * time.Millisecond,
		FixedSuccess: true,
	})

	start := time.Now()
	_, perr := ProcessPayment(store, sim, &testMerchant, upiRequest(), MerchantAPIProfile)
	require.Nil(t, perr)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}
