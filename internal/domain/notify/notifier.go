package notify

import (
	"context"

	"microloan-backend/internal/domain/approval"
)

type Type string

const (
	TypeLoanStatus Type = "loan_status"
	TypePayment    Type = "payment"
)

// Notifier is the external notification sender. Calls are fire-and-forget:
// implementations log failures, callers never see them.
type Notifier interface {
	Notify(ctx context.Context, userID, title, message string, typ Type)
	// NotifyRole fans out to every user holding the role (e.g. all finance
	// admins when a loan becomes ready for disbursement).
	NotifyRole(ctx context.Context, role approval.Role, title, message string, typ Type)
}
