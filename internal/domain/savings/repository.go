package savings

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	ListByMemberID(ctx context.Context, memberID string) ([]Transaction, error)
	BalanceByMemberID(ctx context.Context, memberID string) (decimal.Decimal, error)
}
