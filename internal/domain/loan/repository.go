package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the rest of the transaction;
	// both approval ordering and repayment allocation rely on that lock.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetPipelineLoanByMemberID(ctx context.Context, memberID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
}
