package v1

import (
	"errors"
	"net/http"

	"github.com/pockets-budget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Plan errors
var (
	errExtraPaymentInvalid = errors.New("the extraPayment parameter must be a number that is not negative")
	errPerDebtInvalid      = errors.New("the perDebt parameter must be one of isolated, simulated")
)

// Payment errors
var (
	errPaymentAmountNotPositive = errors.New("the payment amount must be larger than zero")
)
