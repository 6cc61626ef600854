package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"microloan-backend/internal/domain/approval"
	"microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/repayment"
)

// writeDomainError maps engine sentinels to HTTP responses. Everything not in
// the taxonomy is a 500 with no detail leaked.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loan.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
	case errors.Is(err, loan.ErrValidation),
		errors.Is(err, approval.ErrUnknownRole),
		errors.Is(err, repayment.ErrInvalidAmount):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrInvalidState),
		errors.Is(err, approval.ErrOutOfOrder):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repayment.ErrInsufficientData):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
