package approval

import (
	"errors"
	"time"

	"microloan-backend/internal/domain/loan"
)

var (
	ErrOutOfOrder  = errors.New("approval out of order")
	ErrUnknownRole = errors.New("unknown approver role")
)

type Role string

const (
	RoleMember          Role = "member"
	RoleLoanOfficer     Role = "loan_officer"
	RoleBranchManager   Role = "branch_manager"
	RoleRegionalManager Role = "regional_manager"
	RoleFinanceAdmin    Role = "finance_admin"
)

// Rank is the role's fixed position in the approval chain. Unknown roles
// return -1 so they can never satisfy an order check.
func (r Role) Rank() int {
	switch r {
	case RoleMember:
		return 0
	case RoleLoanOfficer:
		return 1
	case RoleBranchManager:
		return 2
	case RoleRegionalManager:
		return 3
	case RoleFinanceAdmin:
		return 4
	}
	return -1
}

type Decision string

const (
	// DecisionApply is reserved for the member's own rank-0 application log.
	DecisionApply   Decision = "apply"
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Stage pairs an approver role with the loan status its approval produces.
type Stage struct {
	Role   Role
	Result loan.Status
}

// Chain is the fixed sequential approval chain. Chain[i] acts at rank i+1;
// rank 0 is the member's own application log.
var Chain = []Stage{
	{Role: RoleLoanOfficer, Result: loan.StatusVerified},
	{Role: RoleBranchManager, Result: loan.StatusVerified},
	{Role: RoleRegionalManager, Result: loan.StatusApproved},
	{Role: RoleFinanceAdmin, Result: loan.StatusDisbursed},
}

// StageAt returns the chain stage acting at the given rank (1-based).
func StageAt(rank int) (Stage, bool) {
	if rank < 1 || rank > len(Chain) {
		return Stage{}, false
	}
	return Chain[rank-1], true
}

// NextExpectedRole resolves who must act next given the rank of the last
// appended log. ok is false once the chain is exhausted.
func NextExpectedRole(lastRank int) (Role, bool) {
	s, ok := StageAt(lastRank + 1)
	if !ok {
		return "", false
	}
	return s.Role, true
}

// Log is one append-only approval trail row. Rows are never updated or
// deleted; ApprovalOrder strictly increases per loan.
type Log struct {
	ID            uint64      `gorm:"primaryKey;column:id" json:"-"`
	ApprovalID    string      `gorm:"size:32;uniqueIndex:ux_approval_logs_approval_id" json:"approval_id"`
	LoanID        uint64      `gorm:"column:loan_id;not null;index:idx_approval_logs_loan" json:"-"`
	ActorID       string      `gorm:"size:32" json:"actor_id"`
	ActorRole     Role        `gorm:"size:32" json:"actor_role"`
	Decision      Decision    `gorm:"size:16" json:"decision"`
	ResultStatus  loan.Status `gorm:"size:16" json:"result_status"`
	ApprovalOrder int         `gorm:"column:approval_order" json:"approval_order"`
	Comments      string      `gorm:"type:text" json:"comments"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (Log) TableName() string { return "approval_logs" }
