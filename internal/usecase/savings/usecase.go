package savings

import (
	"context"

	"github.com/shopspring/decimal"

	domainSavings "microloan-backend/internal/domain/savings"
)

type Usecase struct{ repo domainSavings.Repository }

func NewUsecase(r domainSavings.Repository) *Usecase { return &Usecase{repo: r} }

type StatementDTO struct {
	MemberID     string                      `json:"member_id"`
	Balance      decimal.Decimal             `json:"balance"`
	Transactions []domainSavings.Transaction `json:"transactions"`
}

// Statement returns the member's derived balance with the full transaction
// history. The balance is always SUM(amount); nothing is stored.
func (u *Usecase) Statement(ctx context.Context, memberID string) (*StatementDTO, error) {
	balance, err := u.repo.BalanceByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	txs, err := u.repo.ListByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return &StatementDTO{MemberID: memberID, Balance: balance, Transactions: txs}, nil
}
