package controllers

import (
	"net/http"
	"time"

	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/models"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/google/uuid"
)

// EntryProfile captures how the two entry points differ, so the differences
// live in configuration instead of duplicated handler code. The public
// checkout historically skips the expiry check and settles faster than the
// merchant API; both behaviors are kept as-is under their own profile.
type EntryProfile struct {
	Name               string
	EnforceExpiry      bool
	Delay              utils.DelayRange
	DeclineDescription string
}

var (
	// MerchantAPIProfile is used for authenticated /payments requests.
	MerchantAPIProfile = EntryProfile{
		Name:               "merchant_api",
		EnforceExpiry:      true,
		Delay:              utils.DelayRange{Min: 5 * time.Second, Max: 10 * time.Second},
		DeclineDescription: "Bank declined transaction",
	}

	// PublicCheckoutProfile is used for the unauthenticated checkout page.
	PublicCheckoutProfile = EntryProfile{
		Name:               "public_checkout",
		EnforceExpiry:      false,
		Delay:              utils.DelayRange{Min: 5 * time.Second, Max: 8 * time.Second},
		DeclineDescription: "Declined",
	}
)

// Simulator is the process-wide settlement simulator, built from config at
// startup so handlers never read the environment themselves.
var Simulator *utils.SettlementSimulator

// InitSimulator constructs the settlement simulator from the loaded config.
func InitSimulator() {
	Simulator = utils.NewSettlementSimulator(utils.SettlementConfig{
		TestMode:     config.App.TestMode,
		FixedDelay:   config.App.TestProcessingDelay,
		FixedSuccess: config.App.TestPaymentSuccess,
	})
}

// CardDetails is the card payload on a payment request. The number and CVV
// are used for validation only and never persisted.
type CardDetails struct {
	Number      string `json:"number" binding:"required"`
	ExpiryMonth string `json:"expiry_month" binding:"required"`
	ExpiryYear  string `json:"expiry_year" binding:"required"`
	CVV         string `json:"cvv" binding:"required"`
	HolderName  string `json:"holder_name" binding:"required"`
}

// PaymentRequest is the body of a payment creation request. There is
// deliberately no amount field: amount and currency always come from the
// order, so a client can never tamper with what it pays.
type PaymentRequest struct {
	OrderID string       `json:"order_id" binding:"required"`
	Method  string       `json:"method" binding:"required,oneof=upi card"`
	VPA     string       `json:"vpa"`
	Card    *CardDetails `json:"card"`
}

// ProcessError carries a request-terminal failure out of the pipeline.
type ProcessError struct {
	Status      int
	Code        string
	Description string
}

// ProcessPayment runs the full payment pipeline for one request: resolve the
// order, validate the instrument, persist the payment in processing, sit out
// the simulated bank delay and write the terminal state. It returns the
// payment with its terminal status; validation failures persist nothing.
//
// merchantID scopes the order lookup on the authenticated path; the public
// checkout passes nil and the merchant is taken from the order itself.
func ProcessPayment(store Store, sim *utils.SettlementSimulator, merchantID *uuid.UUID, req PaymentRequest, profile EntryProfile) (*models.Payment, *ProcessError) {
	// 1. Resolve the order before touching anything else.
	var order *models.Order
	var err error
	if merchantID != nil {
		order, err = store.FindOrderOwnedBy(req.OrderID, *merchantID)
	} else {
		order, err = store.FindOrder(req.OrderID)
	}
	if err != nil {
		utils.LogError("Order lookup failed for %s: %v", req.OrderID, err)
		return nil, &ProcessError{http.StatusInternalServerError, utils.ErrCodeServer, "Failed to look up order"}
	}
	if order == nil {
		return nil, &ProcessError{http.StatusNotFound, utils.ErrCodeNotFound, "Order not found"}
	}

	// 2. Method-specific validation. Nothing is persisted on failure.
	var cardNetwork, cardLast4 string
	switch req.Method {
	case models.PaymentMethodUPI:
		if req.VPA == "" || !utils.ValidateVPA(req.VPA) {
			return nil, &ProcessError{http.StatusBadRequest, utils.ErrCodeInvalidVPA, "Invalid VPA format"}
		}
	case models.PaymentMethodCard:
		if req.Card == nil {
			return nil, &ProcessError{http.StatusBadRequest, utils.ErrCodeBadRequest, "Card details required"}
		}
		if !utils.ValidateLuhn(req.Card.Number) {
			return nil, &ProcessError{http.StatusBadRequest, utils.ErrCodeInvalidCard, "Invalid card number"}
		}
		if profile.EnforceExpiry && !utils.ValidateExpiry(req.Card.ExpiryMonth, req.Card.ExpiryYear) {
			return nil, &ProcessError{http.StatusBadRequest, utils.ErrCodeExpiredCard, "Card expired"}
		}
		cardNetwork = utils.CardNetwork(req.Card.Number)
		digits := utils.StripNonDigits(req.Card.Number)
		cardLast4 = digits[len(digits)-4:]
	}

	// 3. Persist the payment in processing. Amount and currency are copied
	// verbatim from the order. The unique primary key is the authoritative
	// collision guard; insert conflicts retry with a fresh ID.
	payment := &models.Payment{
		OrderID:     order.ID,
		MerchantID:  order.MerchantID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Method:      req.Method,
		Status:      models.PaymentStatusProcessing,
		VPA:         req.VPA,
		CardNetwork: cardNetwork,
		CardLast4:   cardLast4,
	}

	inserted := false
	for attempt := 0; attempt < utils.MaxIDAttempts; attempt++ {
		payment.ID = utils.GenerateID("pay")
		if existing, ferr := store.FindPayment(payment.ID); ferr == nil && existing != nil {
			continue
		}
		ierr := store.InsertPayment(payment)
		if ierr == ErrDuplicateID {
			utils.LogError("Payment ID collision on insert, attempt %d", attempt+1)
			continue
		}
		if ierr != nil {
			utils.LogError("Failed to insert payment for order %s: %v", order.ID, ierr)
			return nil, &ProcessError{http.StatusInternalServerError, utils.ErrCodeServer, "Failed to create payment"}
		}
		inserted = true
		break
	}
	if !inserted {
		return nil, &ProcessError{http.StatusInternalServerError, utils.ErrCodeServer, "Failed to allocate payment id"}
	}
	utils.LogInfo("Payment %s created in processing for order %s via %s", payment.ID, order.ID, profile.Name)

	// 4. Simulated bank processing. The sleep only parks this request's
	// goroutine; other requests keep flowing.
	delay, success := sim.Simulate(req.Method, profile.Delay)
	if delay > 0 {
		time.Sleep(delay)
	}

	// 5. Terminal transition, written exactly once.
	if success {
		if terr := payment.MarkSucceeded(); terr != nil {
			utils.LogError("Payment %s: %v", payment.ID, terr)
		}
	} else {
		if terr := payment.MarkFailed(utils.ErrCodePaymentFailed, profile.DeclineDescription); terr != nil {
			utils.LogError("Payment %s: %v", payment.ID, terr)
		}
	}

	fields := map[string]interface{}{
		"status":            payment.Status,
		"error_code":        payment.ErrorCode,
		"error_description": payment.ErrorDescription,
	}
	if uerr := store.UpdatePayment(payment.ID, fields); uerr != nil {
		utils.LogError("Failed to persist terminal state for payment %s: %v", payment.ID, uerr)
		return nil, &ProcessError{http.StatusInternalServerError, utils.ErrCodeServer, "Failed to finalize payment"}
	}

	utils.LogInfo("Payment %s settled with status %s after %v", payment.ID, payment.Status, delay)
	return payment, nil
}
