package ledger

import "context"

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Entry, error)
}
