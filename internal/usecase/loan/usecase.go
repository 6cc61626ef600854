package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	domainApproval "microloan-backend/internal/domain/approval"
	domainLoan "microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/notify"
	"microloan-backend/internal/domain/uow"
	"microloan-backend/pkg/amortization"
	"microloan-backend/pkg/id"
)

type Usecase struct {
	repo     domainLoan.Repository
	uow      uow.UnitOfWork
	notifier notify.Notifier
	log      *logrus.Logger
}

func NewUsecase(r domainLoan.Repository, tx uow.UnitOfWork, n notify.Notifier, log *logrus.Logger) *Usecase {
	return &Usecase{repo: r, uow: tx, notifier: n, log: log}
}

// Apply registers a new application in pending status and writes the member's
// rank-0 log row. A member with a loan still in the approval pipeline cannot
// apply again.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if len(in.MemberID) != 32 {
		return nil, fmt.Errorf("%w: member_id must be 32-char hex", domainLoan.ErrValidation)
	}
	if !in.Principal.IsPositive() {
		return nil, fmt.Errorf("%w: principal must be positive", domainLoan.ErrValidation)
	}
	if in.RatePercent.IsNegative() {
		return nil, fmt.Errorf("%w: rate must not be negative", domainLoan.ErrValidation)
	}
	if in.TermMonths < 1 {
		return nil, fmt.Errorf("%w: term must be at least one month", domainLoan.ErrValidation)
	}
	if in.Frequency == "" {
		in.Frequency = domainLoan.FrequencyMonthly
	}
	if !in.Frequency.Valid() {
		return nil, fmt.Errorf("%w: unknown frequency %q", domainLoan.ErrValidation, in.Frequency)
	}

	// Block if the member already has a loan in the approval pipeline.
	pending, err := u.repo.GetPipelineLoanByMemberID(ctx, in.MemberID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: member %s already has open application %s",
			domainLoan.ErrValidation, in.MemberID, pending.LoanID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	l := &domainLoan.Loan{
		LoanID:          id.NewID32(),
		MemberID:        in.MemberID,
		Principal:       in.Principal,
		RatePercent:     in.RatePercent,
		TermMonths:      in.TermMonths,
		Frequency:       in.Frequency,
		Status:          domainLoan.StatusPending,
		RemainingAmount: in.Principal,
		StatusUpdatedAt: time.Now().UTC(),
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		return r.Approvals.Append(ctx, &domainApproval.Log{
			ApprovalID:    id.NewID32(),
			LoanID:        l.ID,
			ActorID:       in.MemberID,
			ActorRole:     domainApproval.RoleMember,
			Decision:      domainApproval.DecisionApply,
			ResultStatus:  domainLoan.StatusPending,
			ApprovalOrder: domainApproval.RoleMember.Rank(),
		})
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, l.MemberID, "Loan application received",
		fmt.Sprintf("Your loan application %s for %s is pending review.", l.LoanID, l.Principal),
		notify.TypeLoanStatus)

	dto := toDTO(l)
	return &dto, nil
}

// Get returns the loan with its approval trail and installment schedule.
func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDetailDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}

	out := &LoanDetailDTO{LoanDTO: toDTO(l)}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		logs, err := r.Approvals.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		rows, err := r.Installments.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		out.ApprovalLogs = logs
		out.Installments = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Preview computes a schedule without persisting anything.
func (u *Usecase) Preview(ctx context.Context, in PreviewInput) (*amortization.Schedule, error) {
	if in.Frequency == "" {
		in.Frequency = domainLoan.FrequencyMonthly
	}
	s, err := amortization.Compute(in.Principal, in.RatePercent, in.TermMonths, amortization.Frequency(in.Frequency))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainLoan.ErrValidation, err)
	}
	return s, nil
}
