package approval

import "context"

type Repository interface {
	// Append inserts one trail row; there is deliberately no update or delete.
	Append(ctx context.Context, l *Log) error
	GetLastByLoanID(ctx context.Context, loanNumericID uint64) (*Log, error)
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Log, error)
}
