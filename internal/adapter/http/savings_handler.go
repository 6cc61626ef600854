package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microloan-backend/internal/usecase/savings"
)

type SavingsHandler struct{ uc *savings.Usecase }

func NewSavingsHandler(uc *savings.Usecase) *SavingsHandler { return &SavingsHandler{uc: uc} }

func (h *SavingsHandler) GetStatement(c echo.Context) error {
	memberID := c.Param("member_id")
	if !reHex32.MatchString(memberID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid member_id"})
	}
	dto, err := h.uc.Statement(c.Request().Context(), memberID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
