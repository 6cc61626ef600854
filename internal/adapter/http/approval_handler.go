package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microloan-backend/internal/adapter/middleware"
	domainApproval "microloan-backend/internal/domain/approval"
	"microloan-backend/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approval.Usecase }

func NewApprovalHandler(uc *approval.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type submitApprovalReq struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	Comments string `json:"comments" validate:"omitempty,max=1000"`
}

// SubmitApproval moves the loan one step through the chain; the acting user
// and role come from the actor middleware, not the payload.
func (h *ApprovalHandler) SubmitApproval(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing actor"})
	}

	var req submitApprovalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Submit(c.Request().Context(), approval.SubmitInput{
		LoanID:    loanID,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Decision:  domainApproval.Decision(req.Decision),
		Comments:  req.Comments,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
