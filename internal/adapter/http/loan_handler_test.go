package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	domainApproval "microloan-backend/internal/domain/approval"
	domain "microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/repayment"
	"microloan-backend/internal/domain/uow"
	"microloan-backend/internal/testutil/approvalmock"
	"microloan-backend/internal/testutil/loanmock"
	"microloan-backend/internal/testutil/notifymock"
	"microloan-backend/internal/testutil/repaymentmock"
	"microloan-backend/internal/testutil/uowmock"
	uc "microloan-backend/internal/usecase/loan"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newLoanUsecase(repo *loanmock.Repo) *uc.Usecase {
	tx := uowmock.Passthrough(uow.Repos{
		Loans:        repo,
		Approvals:    &approvalmock.Repo{},
		Installments: &repaymentmock.InstallmentRepo{},
	}, nil)
	return uc.NewUsecase(repo, tx, &notifymock.Notifier{}, quietLogger())
}

// -------- tests --------

func TestCreateLoan_Success(t *testing.T) {
	e := newEchoWithValidator()

	repo := &loanmock.Repo{
		GetPipelineLoanByMemberIDFn: func(ctx context.Context, memberID string) (*domain.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			l.ID = 1
			return nil
		},
	}
	h := NewLoanHandler(newLoanUsecase(repo))

	reqBody := map[string]any{
		"member_id":    strings.Repeat("b", 32),
		"principal":    "5000.00",
		"rate_percent": "5",
		"term_months":  12,
		"frequency":    "monthly",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateLoan(c); err != nil {
		t.Fatalf("CreateLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body=%s", rec.Code, rec.Body.String())
	}
	var got uc.LoanDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.MemberID != strings.Repeat("b", 32) || got.Status != domain.StatusPending {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if len(got.LoanID) != 32 {
		t.Fatalf("loan_id = %q, want 32-char hex", got.LoanID)
	}
}

func TestCreateLoan_ValidationFailures(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLoanHandler(newLoanUsecase(&loanmock.Repo{}))

	tests := []struct {
		name string
		body map[string]any
	}{
		{"bad member id", map[string]any{
			"member_id": "abc", "principal": "5000", "term_months": 12,
		}},
		{"zero principal", map[string]any{
			"member_id": strings.Repeat("b", 32), "principal": "0", "term_months": 12,
		}},
		{"too many decimals", map[string]any{
			"member_id": strings.Repeat("b", 32), "principal": "5000.123", "term_months": 12,
		}},
		{"term too long", map[string]any{
			"member_id": strings.Repeat("b", 32), "principal": "5000", "term_months": 999,
		}},
		{"unknown frequency", map[string]any{
			"member_id": strings.Repeat("b", 32), "principal": "5000", "term_months": 12, "frequency": "daily",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			if err := h.CreateLoan(e.NewContext(req, rec)); err != nil {
				t.Fatalf("CreateLoan error: %v", err)
			}
			if rec.Code != stdhttp.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422, body=%s", rec.Code, rec.Body.String())
			}
			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || len(resp.Details) == 0 {
				t.Fatalf("expected field errors, body=%s", rec.Body.String())
			}
		})
	}
}

func TestCreateLoan_DuplicateApplication(t *testing.T) {
	e := newEchoWithValidator()
	repo := &loanmock.Repo{
		GetPipelineLoanByMemberIDFn: func(ctx context.Context, memberID string) (*domain.Loan, error) {
			return &domain.Loan{LoanID: strings.Repeat("a", 32), Status: domain.StatusPending}, nil
		},
	}
	h := NewLoanHandler(newLoanUsecase(repo))

	reqBody := map[string]any{
		"member_id": strings.Repeat("b", 32), "principal": "5000", "term_months": 12,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.CreateLoan(e.NewContext(req, rec)); err != nil {
		t.Fatalf("CreateLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetLoan(t *testing.T) {
	e := newEchoWithValidator()
	loanID := strings.Repeat("a", 32)

	repo := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, id string) (*domain.Loan, error) {
			if id != loanID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.Loan{ID: 1, LoanID: loanID, Status: domain.StatusDisbursed}, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{
		Approvals: &approvalmock.Repo{
			ListByLoanIDFn: func(ctx context.Context, id uint64) ([]domainApproval.Log, error) {
				return []domainApproval.Log{{ApprovalOrder: 0}}, nil
			},
		},
		Installments: &repaymentmock.InstallmentRepo{
			ListByLoanIDFn: func(ctx context.Context, id uint64) ([]repayment.Installment, error) {
				return make([]repayment.Installment, 3), nil
			},
		},
	}, nil)
	h := NewLoanHandler(uc.NewUsecase(repo, tx, &notifymock.Notifier{}, quietLogger()))

	// found
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("loan_id")
	c.SetParamValues(loanID)
	if err := h.GetLoan(c); err != nil {
		t.Fatalf("GetLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got uc.LoanDetailDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(got.ApprovalLogs) != 1 || len(got.Installments) != 3 {
		t.Fatalf("detail = %d logs %d installments", len(got.ApprovalLogs), len(got.Installments))
	}

	// unknown id -> 404
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(stdhttp.MethodGet, "/", nil), rec)
	c.SetParamNames("loan_id")
	c.SetParamValues(strings.Repeat("f", 32))
	_ = h.GetLoan(c)
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	// malformed id -> 400 without touching the repo
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(stdhttp.MethodGet, "/", nil), rec)
	c.SetParamNames("loan_id")
	c.SetParamValues("not-hex")
	_ = h.GetLoan(c)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPreviewSchedule(t *testing.T) {
	e := newEchoWithValidator()
	h := NewLoanHandler(newLoanUsecase(&loanmock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/loans/schedule/preview?amount=5000&rate_percent=5&term_months=12", nil)
	rec := httptest.NewRecorder()
	if err := h.PreviewSchedule(e.NewContext(req, rec)); err != nil {
		t.Fatalf("PreviewSchedule error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var sched struct {
		Lines        []json.RawMessage `json:"schedule"`
		TotalPayment string            `json:"total_payment"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sched); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(sched.Lines) != 12 || sched.TotalPayment != "5136.45" {
		t.Fatalf("unexpected schedule: %d lines, total %s", len(sched.Lines), sched.TotalPayment)
	}

	// bad amount -> 400
	req = httptest.NewRequest(stdhttp.MethodGet, "/loans/schedule/preview?amount=abc", nil)
	rec = httptest.NewRecorder()
	_ = h.PreviewSchedule(e.NewContext(req, rec))
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	// zero term -> validation error from the engine -> 400
	req = httptest.NewRequest(stdhttp.MethodGet, "/loans/schedule/preview?amount=5000&term_months=0", nil)
	rec = httptest.NewRecorder()
	_ = h.PreviewSchedule(e.NewContext(req, rec))
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
