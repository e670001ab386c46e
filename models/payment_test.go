package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkSucceededFromProcessing(t *testing.T) {
	p := &Payment{ID: "pay_x", Status: PaymentStatusProcessing}

	require.NoError(t, p.MarkSucceeded())
	assert.Equal(t, PaymentStatusSuccess, p.Status)
	assert.True(t, p.IsTerminal())
}

func TestMarkFailedRecordsDecline(t *testing.T) {
	p := &Payment{ID: "pay_x", Status: PaymentStatusProcessing}

	require.NoError(t, p.MarkFailed("PAYMENT_FAILED", "Bank declined transaction"))
	assert.Equal(t, PaymentStatusFailed, p.Status)
	assert.Equal(t, "PAYMENT_FAILED", p.ErrorCode)
	assert.Equal(t, "Bank declined transaction", p.ErrorDescription)
	assert.True(t, p.IsTerminal())
}

func TestTerminalStatesAreFinal(t *testing.T) {
	succeeded := &Payment{Status: PaymentStatusSuccess}
	assert.ErrorIs(t, succeeded.MarkFailed("PAYMENT_FAILED", "Declined"), ErrInvalidTransition)
	assert.ErrorIs(t, succeeded.MarkSucceeded(), ErrInvalidTransition)
	assert.Equal(t, PaymentStatusSuccess, succeeded.Status)

	failed := &Payment{Status: PaymentStatusFailed}
	assert.ErrorIs(t, failed.MarkSucceeded(), ErrInvalidTransition)
	assert.Equal(t, PaymentStatusFailed, failed.Status)
}

func TestCreatedPaymentCannotSkipProcessing(t *testing.T) {
	p := &Payment{Status: PaymentStatusCreated}
	assert.ErrorIs(t, p.MarkSucceeded(), ErrInvalidTransition)
	assert.ErrorIs(t, p.MarkFailed("PAYMENT_FAILED", "Declined"), ErrInvalidTransition)
	assert.False(t, p.IsTerminal())
}
