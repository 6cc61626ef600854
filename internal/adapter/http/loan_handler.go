package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	domainLoan "microloan-backend/internal/domain/loan"
	"microloan-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	MemberID    string          `json:"member_id"    validate:"required,hex32"`
	Principal   decimal.Decimal `json:"principal"    validate:"required,gt=0,dec2"`
	RatePercent decimal.Decimal `json:"rate_percent" validate:"gte=0,lte=100"`
	TermMonths  int             `json:"term_months"  validate:"required,gte=1,lte=360"`
	Frequency   string          `json:"frequency"    validate:"omitempty,oneof=monthly quarterly annually"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		MemberID:    req.MemberID,
		Principal:   req.Principal,
		RatePercent: req.RatePercent,
		TermMonths:  req.TermMonths,
		Frequency:   domainLoan.Frequency(req.Frequency),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type previewReq struct {
	Amount      string `query:"amount"`
	RatePercent string `query:"rate_percent"`
	TermMonths  int    `query:"term_months"`
	Frequency   string `query:"frequency"`
}

// PreviewSchedule computes a schedule from query params without persisting.
func (h *LoanHandler) PreviewSchedule(c echo.Context) error {
	var req previewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount"})
	}
	rate := decimal.Zero
	if req.RatePercent != "" {
		if rate, err = decimal.NewFromString(req.RatePercent); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rate_percent"})
		}
	}

	sched, err := h.uc.Preview(c.Request().Context(), loan.PreviewInput{
		Principal:   amount,
		RatePercent: rate,
		TermMonths:  req.TermMonths,
		Frequency:   domainLoan.Frequency(req.Frequency),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sched)
}
