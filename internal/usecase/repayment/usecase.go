package repayment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	domainLedger "microloan-backend/internal/domain/ledger"
	domainLoan "microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/notify"
	domainRepayment "microloan-backend/internal/domain/repayment"
	"microloan-backend/internal/domain/savings"
	"microloan-backend/internal/domain/uow"
	"microloan-backend/pkg/id"
)

type Usecase struct {
	uow      uow.UnitOfWork
	notifier notify.Notifier
	accounts domainLedger.PostingAccounts
	log      *logrus.Logger
}

func NewUsecase(tx uow.UnitOfWork, n notify.Notifier, accounts domainLedger.PostingAccounts, log *logrus.Logger) *Usecase {
	return &Usecase{uow: tx, notifier: n, accounts: accounts, log: log}
}

// Pay applies a payment against the loan's pending installments oldest due
// date first, records the immutable payment row for the full amount, and
// recomputes the outstanding balance. Any amount beyond the outstanding
// installments is credited to the member's savings ledger. Everything runs in
// one transaction under the loan row lock.
func (u *Usecase) Pay(ctx context.Context, in PayInput) (*LoanDTO, error) {
	if !in.Amount.IsPositive() {
		return nil, domainRepayment.ErrInvalidAmount
	}
	if in.Source == "" {
		in.Source = domainRepayment.SourceManual
	}
	if !in.Source.Valid() {
		return nil, fmt.Errorf("%w: unknown payment source %q", domainLoan.ErrValidation, in.Source)
	}
	if in.PaidAt.IsZero() {
		in.PaidAt = time.Now().UTC()
	}

	var (
		dto      *LoanDTO
		memberID string
		repaid   bool
	)
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		switch {
		case l.Status == domainLoan.StatusRepaid || l.Status == domainLoan.StatusRejected:
			return domainLoan.ErrInvalidState
		case l.Status != domainLoan.StatusDisbursed:
			return domainRepayment.ErrInsufficientData
		}

		pending, err := r.Installments.ListPendingByLoanIDForUpdate(ctx, l.ID)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			return domainRepayment.ErrInsufficientData
		}

		// Strict FIFO: oldest due installment absorbs cash first.
		remaining := in.Amount
		for _, inst := range pending {
			if !remaining.IsPositive() {
				break
			}
			unpaid := inst.Unpaid()
			if !unpaid.IsPositive() {
				continue
			}
			applied := decimal.Min(remaining, unpaid)
			inst.PaidAmount = inst.PaidAmount.Add(applied)
			if inst.PaidAmount.GreaterThanOrEqual(inst.Amount) {
				inst.Status = domainRepayment.InstallmentPaid
			}
			if err := r.Installments.Save(ctx, inst); err != nil {
				return err
			}
			remaining = remaining.Sub(applied)
		}
		allocated := in.Amount.Sub(remaining)

		p := &domainRepayment.Payment{
			PaymentID: id.NewID32(),
			LoanID:    l.ID,
			MemberID:  l.MemberID,
			Amount:    in.Amount,
			PaidAt:    in.PaidAt,
			Source:    in.Source,
			Reference: in.Reference,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		if allocated.IsPositive() {
			err := r.Ledger.Append(ctx, &domainLedger.Entry{
				EntryID:       id.NewID32(),
				LoanID:        l.ID,
				Kind:          domainLedger.KindRepayment,
				DebitAccount:  u.accounts.Cash,
				CreditAccount: u.accounts.LoanReceivable,
				Amount:        allocated,
				PostedAt:      in.PaidAt,
			})
			if err != nil {
				return err
			}
		}

		// Overpayment: the unallocated excess goes to the member's savings.
		if remaining.IsPositive() {
			err := r.Savings.Create(ctx, &savings.Transaction{
				TxID:      id.NewID32(),
				MemberID:  l.MemberID,
				Amount:    remaining,
				Type:      savings.TxLoanOverpayment,
				Reference: p.PaymentID,
			})
			if err != nil {
				return err
			}
			err = r.Ledger.Append(ctx, &domainLedger.Entry{
				EntryID:       id.NewID32(),
				LoanID:        l.ID,
				Kind:          domainLedger.KindOverpayment,
				DebitAccount:  u.accounts.Cash,
				CreditAccount: u.accounts.MemberSavings,
				Amount:        remaining,
				PostedAt:      in.PaidAt,
			})
			if err != nil {
				return err
			}
		}

		// Outstanding is always recomputed from the installments, never
		// decremented in place.
		outstanding, err := r.Installments.OutstandingByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		l.RemainingAmount = outstanding
		if !outstanding.IsPositive() {
			l.Status = domainLoan.StatusRepaid
			l.StatusUpdatedAt = time.Now().UTC()
			repaid = true
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		memberID = l.MemberID
		dto = &LoanDTO{
			LoanID:          l.LoanID,
			MemberID:        l.MemberID,
			Status:          l.Status,
			RemainingAmount: l.RemainingAmount,
			PaymentID:       p.PaymentID,
			Allocated:       allocated,
			Excess:          remaining,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"loan_id":   in.LoanID,
		"amount":    in.Amount.String(),
		"allocated": dto.Allocated.String(),
		"excess":    dto.Excess.String(),
	}).Info("payment applied")

	u.notifier.Notify(ctx, memberID, "Payment received",
		fmt.Sprintf("Payment of %s was applied to loan %s.", in.Amount, in.LoanID), notify.TypePayment)
	if repaid {
		u.notifier.Notify(ctx, memberID, "Loan settled",
			fmt.Sprintf("Loan %s is fully repaid.", in.LoanID), notify.TypeLoanStatus)
	}
	return dto, nil
}
