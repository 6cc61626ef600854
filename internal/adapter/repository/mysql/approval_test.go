package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "microloan-backend/internal/domain/approval"
	loanDomain "microloan-backend/internal/domain/loan"
	"microloan-backend/pkg/id"
)

// The approval log model carries no MySQL-only column types, so the domain
// model migrates cleanly on sqlite.
func openApprovalTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Log{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLog(loanNumericID uint64, role domain.Role, order int, result loanDomain.Status) *domain.Log {
	return &domain.Log{
		ApprovalID:    id.NewID32(),
		LoanID:        loanNumericID,
		ActorID:       id.NewID32(),
		ActorRole:     role,
		Decision:      domain.DecisionApprove,
		ResultStatus:  result,
		ApprovalOrder: order,
		Comments:      "ok",
	}
}

func TestApproval_AppendAndGetLast(t *testing.T) {
	db := openApprovalTestDB(t)
	repo := NewApprovalRepository(db)
	ctx := context.Background()

	rows := []*domain.Log{
		makeLog(7, domain.RoleMember, 0, loanDomain.StatusPending),
		makeLog(7, domain.RoleLoanOfficer, 1, loanDomain.StatusVerified),
		makeLog(7, domain.RoleBranchManager, 2, loanDomain.StatusVerified),
	}
	for _, row := range rows {
		if err := repo.Append(ctx, row); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	// Another loan's trail must not leak in.
	if err := repo.Append(ctx, makeLog(8, domain.RoleRegionalManager, 3, loanDomain.StatusApproved)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	last, err := repo.GetLastByLoanID(ctx, 7)
	if err != nil {
		t.Fatalf("GetLastByLoanID: %v", err)
	}
	if last.ApprovalOrder != 2 || last.ActorRole != domain.RoleBranchManager {
		t.Errorf("unexpected last log: %+v", last)
	}
}

func TestApproval_ListByLoanID_Ordered(t *testing.T) {
	db := openApprovalTestDB(t)
	repo := NewApprovalRepository(db)
	ctx := context.Background()

	// Insert out of order; the list must come back sorted by approval order.
	for _, order := range []int{2, 0, 1} {
		if err := repo.Append(ctx, makeLog(7, domain.RoleLoanOfficer, order, loanDomain.StatusVerified)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	logs, err := repo.ListByLoanID(ctx, 7)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("got %d logs, want 3", len(logs))
	}
	for i, l := range logs {
		if l.ApprovalOrder != i {
			t.Errorf("log %d has order %d, want %d", i, l.ApprovalOrder, i)
		}
	}
}

func TestApproval_GetLast_NotFound(t *testing.T) {
	db := openApprovalTestDB(t)
	repo := NewApprovalRepository(db)

	_, err := repo.GetLastByLoanID(context.Background(), 999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
