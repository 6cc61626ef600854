package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	domainRepayment "microloan-backend/internal/domain/repayment"
	"microloan-backend/internal/usecase/repayment"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type recordPaymentReq struct {
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0,dec2"`
	// Canonical date `YYYY-MM-DD`; defaults to today when omitted.
	PaidAt    string `json:"paid_at"   validate:"omitempty,datetime=2006-01-02"`
	Source    string `json:"source"    validate:"omitempty,oneof=manual payroll bank"`
	Reference string `json:"reference" validate:"omitempty,max=255"`
}

func (h *RepaymentHandler) RecordPayment(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}

	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var paidAt time.Time
	if req.PaidAt != "" {
		paidAt, _ = time.Parse("2006-01-02", req.PaidAt)
		paidAt = paidAt.UTC()
	}

	dto, err := h.uc.Pay(c.Request().Context(), repayment.PayInput{
		LoanID:    loanID,
		Amount:    req.Amount,
		PaidAt:    paidAt,
		Source:    domainRepayment.Source(req.Source),
		Reference: req.Reference,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
