package approval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	domainApproval "microloan-backend/internal/domain/approval"
	domainLedger "microloan-backend/internal/domain/ledger"
	domainLoan "microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/notify"
	"microloan-backend/internal/domain/repayment"
	"microloan-backend/internal/domain/uow"
	"microloan-backend/pkg/amortization"
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

// Submit moves a loan one step through the approval chain. The whole
// transition (status, trail row, and on disbursement the schedule and ledger
// posting) commits or rolls back as one transaction; the loan row lock taken
// by WithinLoanTx serializes concurrent submissions so the order check never
// reads a stale trail.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*LoanDTO, error) {
	if in.Decision != domainApproval.DecisionApprove && in.Decision != domainApproval.DecisionReject {
		return nil, fmt.Errorf("%w: decision must be approve or reject", domainLoan.ErrValidation)
	}
	rank := in.ActorRole.Rank()
	if rank < 1 {
		return nil, fmt.Errorf("%w: %q", domainApproval.ErrUnknownRole, in.ActorRole)
	}

	var (
		dto      *LoanDTO
		memberID string
		result   domainLoan.Status
	)
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status.Terminal() {
			return domainLoan.ErrInvalidState
		}

		lastRank := domainApproval.RoleMember.Rank()
		last, err := r.Approvals.GetLastByLoanID(ctx, l.ID)
		switch {
		case err == nil:
			lastRank = last.ApprovalOrder
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		expected, ok := domainApproval.NextExpectedRole(lastRank)
		if !ok || in.ActorRole != expected {
			return fmt.Errorf("%w: expected %s at order %d, got %s",
				domainApproval.ErrOutOfOrder, expected, lastRank+1, in.ActorRole)
		}

		stage, _ := domainApproval.StageAt(rank)
		result = stage.Result
		if in.Decision == domainApproval.DecisionReject {
			result = domainLoan.StatusRejected
		}

		entry := &domainApproval.Log{
			ApprovalID:    id.NewID32(),
			LoanID:        l.ID,
			ActorID:       in.ActorID,
			ActorRole:     in.ActorRole,
			Decision:      in.Decision,
			ResultStatus:  result,
			ApprovalOrder: rank,
			Comments:      in.Comments,
		}
		if err := r.Approvals.Append(ctx, entry); err != nil {
			return err
		}

		installments := 0
		if result == domainLoan.StatusDisbursed {
			n, err := u.disburse(ctx, r, l)
			if err != nil {
				return err
			}
			installments = n
		}

		l.Status = result
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		memberID = l.MemberID
		dto = &LoanDTO{
			LoanID:          l.LoanID,
			MemberID:        l.MemberID,
			Status:          l.Status,
			RemainingAmount: l.RemainingAmount,
			ApprovalID:      entry.ApprovalID,
			ApprovalOrder:   entry.ApprovalOrder,
			Installments:    installments,
			StatusUpdatedAt: l.StatusUpdatedAt,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}

	u.notifyTransition(ctx, memberID, in.LoanID, result)
	return dto, nil
}

// disburse generates and persists the repayment schedule, resets the
// outstanding balance to the total repayable, and posts the funding entry.
func (u *Usecase) disburse(ctx context.Context, r uow.Repos, l *domainLoan.Loan) (int, error) {
	sched, err := amortization.Compute(l.Principal, l.RatePercent, l.TermMonths, amortization.Frequency(l.Frequency))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domainLoan.ErrValidation, err)
	}

	now := time.Now().UTC()
	months := amortization.Frequency(l.Frequency).MonthsPerPeriod()
	rows := make([]repayment.Installment, 0, len(sched.Lines))
	for _, ln := range sched.Lines {
		rows = append(rows, repayment.Installment{
			LoanID:           l.ID,
			Seq:              ln.Period,
			DueDate:          now.AddDate(0, months*ln.Period, 0),
			Amount:           ln.Payment,
			PrincipalPortion: ln.PrincipalPortion,
			InterestPortion:  ln.InterestPortion,
			PaidAmount:       decimal.Zero,
			Status:           repayment.InstallmentPending,
		})
	}
	if err := r.Installments.CreateBatch(ctx, rows); err != nil {
		return 0, err
	}

	l.RemainingAmount = sched.TotalPayment

	err = r.Ledger.Append(ctx, &domainLedger.Entry{
		EntryID:       id.NewID32(),
		LoanID:        l.ID,
		Kind:          domainLedger.KindDisbursement,
		DebitAccount:  u.accounts.LoanReceivable,
		CreditAccount: u.accounts.Cash,
		Amount:        l.Principal,
		PostedAt:      now,
	})
	if err != nil {
		return 0, err
	}

	u.log.WithFields(logrus.Fields{
		"loan_id":       l.LoanID,
		"installments":  len(rows),
		"total_payment": sched.TotalPayment.String(),
	}).Info("loan disbursed, schedule generated")
	return len(rows), nil
}

func (u *Usecase) notifyTransition(ctx context.Context, memberID, loanID string, result domainLoan.Status) {
	var msg string
	switch result {
	case domainLoan.StatusVerified:
		msg = fmt.Sprintf("Your loan %s passed verification.", loanID)
	case domainLoan.StatusApproved:
		msg = fmt.Sprintf("Your loan %s is approved and awaiting disbursement.", loanID)
	case domainLoan.StatusDisbursed:
		msg = fmt.Sprintf("Your loan %s has been disbursed.", loanID)
	case domainLoan.StatusRejected:
		msg = fmt.Sprintf("Your loan %s was rejected.", loanID)
	default:
		msg = fmt.Sprintf("Your loan %s changed status to %s.", loanID, result)
	}
	u.notifier.Notify(ctx, memberID, "Loan status update", msg, notify.TypeLoanStatus)

	if result == domainLoan.StatusApproved {
		u.notifier.NotifyRole(ctx, domainApproval.RoleFinanceAdmin, "Loan ready for disbursement",
			fmt.Sprintf("Loan %s is approved and awaits disbursement.", loanID), notify.TypeLoanStatus)
	}
}
