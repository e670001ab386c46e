package utils

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateVPA(t *testing.T) {
	tests := []struct {
		vpa   string
		valid bool
	}{
		{"user.name@bank", true},
		{"user_name@okaxis", true},
		{"9876543210@ybl", true},
		{"a-b.c_d@upi", true},
		{"user@@bank", false},
		{"user@", false},
		{"@bank", false},
		{"user@bank.name", false},
		{"user bank@upi", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidateVPA(tt.vpa), "vpa %q", tt.vpa)
	}
}

func TestValidateLuhn(t *testing.T) {
	valid := []string{
		"4111111111111111",
		"5500000000000004",
		"340000000000009",
		"6011111111111117",
		"4111 1111 1111 1111",
		"4111-1111-1111-1111",
	}
	for _, num := range valid {
		assert.True(t, ValidateLuhn(num), "expected %q to pass Luhn", num)
	}

	assert.False(t, ValidateLuhn(""), "empty input")
	assert.False(t, ValidateLuhn("411111111111"), "12 digits is too short")
	assert.False(t, ValidateLuhn("41111111111111111111"), "20 digits is too long")
	assert.False(t, ValidateLuhn("4111a1111"), "stripping letters leaves too few digits")
}

func TestValidateLuhnSingleDigitMutation(t *testing.T) {
	base := "4111111111111111"
	for i := 0; i < len(base); i++ {
		d := int(base[i] - '0')
		mutated := base[:i] + strconv.Itoa((d+1)%10) + base[i+1:]
		assert.False(t, ValidateLuhn(mutated), "mutation at position %d should break the checksum", i)
	}
}

func TestCardNetwork(t *testing.T) {
	tests := []struct {
		number  string
		network string
	}{
		{"4111111111111111", NetworkVisa},
		{"4", NetworkVisa},
		{"5100000000000000", NetworkMastercard},
		{"5500000000000004", NetworkMastercard},
		{"340000000000009", NetworkAmex},
		{"370000000000002", NetworkAmex},
		{"6011111111111117", NetworkRupay},
		{"6500000000000002", NetworkRupay},
		{"8112345678901234", NetworkRupay},
		{"8912345678901234", NetworkRupay},
		{"9912345678901234", NetworkUnknown},
		{"3600000000000008", NetworkUnknown},
		{"7", NetworkUnknown},
		{"", NetworkUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.network, CardNetwork(tt.number), "number %q", tt.number)
	}
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now()
	curMonth := fmt.Sprintf("%d", int(now.Month()))
	curYear := fmt.Sprintf("%d", now.Year())

	assert.True(t, ValidateExpiry(curMonth, curYear), "current month of current year is still valid")
	assert.True(t, ValidateExpiry("1", fmt.Sprintf("%d", now.Year()+1)))
	assert.True(t, ValidateExpiry("12", fmt.Sprintf("%02d", (now.Year()+1)%100)), "two-digit year")

	assert.False(t, ValidateExpiry("1", fmt.Sprintf("%d", now.Year()-1)), "last year")
	assert.False(t, ValidateExpiry("13", curYear), "month out of range")
	assert.False(t, ValidateExpiry("0", curYear), "month out of range")
	assert.False(t, ValidateExpiry("ab", curYear), "unparseable month")
	assert.False(t, ValidateExpiry("1", "cd"), "unparseable year")

	if now.Month() > time.January {
		prevMonth := fmt.Sprintf("%d", int(now.Month())-1)
		assert.False(t, ValidateExpiry(prevMonth, curYear), "previous month of current year")
	}
}
