package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Gateway error codes returned in the error envelope.
const (
	ErrCodeAuthentication = "AUTHENTICATION_ERROR"
	ErrCodeBadRequest     = "BAD_REQUEST_ERROR"
	ErrCodeNotFound       = "NOT_FOUND_ERROR"
	ErrCodeInvalidVPA     = "INVALID_VPA"
	ErrCodeInvalidCard    = "INVALID_CARD"
	ErrCodeExpiredCard    = "EXPIRED_CARD"
	ErrCodeRateLimit      = "RATE_LIMIT_ERROR"
	ErrCodeServer         = "SERVER_ERROR"

	// ErrCodePaymentFailed is a business outcome carried on the payment
	// record itself, not an HTTP error.
	ErrCodePaymentFailed = "PAYMENT_FAILED"
)

// ErrorBody is the razorpay-style error envelope every failure response uses:
// {"error": {"code": "...", "description": "..."}}
type ErrorBody struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// GatewayError sends a structured error response.
func GatewayError(c *gin.Context, status int, code, description string) {
	c.JSON(status, gin.H{"error": ErrorBody{Code: code, Description: description}})
}

// BadRequest sends a 400 response with the given error code.
func BadRequest(c *gin.Context, code, description string) {
	GatewayError(c, http.StatusBadRequest, code, description)
}

// Unauthorized sends a 401 authentication error.
func Unauthorized(c *gin.Context, description string) {
	GatewayError(c, http.StatusUnauthorized, ErrCodeAuthentication, description)
}

// NotFound sends a 404 not-found error.
func NotFound(c *gin.Context, description string) {
	GatewayError(c, http.StatusNotFound, ErrCodeNotFound, description)
}

// TooManyRequests sends a 429 rate-limit error.
func TooManyRequests(c *gin.Context, description string) {
	GatewayError(c, http.StatusTooManyRequests, ErrCodeRateLimit, description)
}

// InternalServerError sends a 500 server error.
func InternalServerError(c *gin.Context, description string) {
	GatewayError(c, http.StatusInternalServerError, ErrCodeServer, description)
}

// OK sends the resource as-is with a 200 status.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends the resource as-is with a 201 status.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
