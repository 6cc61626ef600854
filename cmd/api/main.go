package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "microloan-backend/internal/adapter/http"
	"microloan-backend/internal/adapter/middleware"
	notifyadp "microloan-backend/internal/adapter/notify"
	"microloan-backend/internal/adapter/repository/mysql"
	"microloan-backend/internal/config"
	"microloan-backend/internal/domain/ledger"
	"microloan-backend/internal/infrastructure/cache"
	"microloan-backend/internal/infrastructure/db"
	approvalUC "microloan-backend/internal/usecase/approval"
	loanUC "microloan-backend/internal/usecase/loan"
	repaymentUC "microloan-backend/internal/usecase/repayment"
	savingsUC "microloan-backend/internal/usecase/savings"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := config.GetLogger()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("mysql connect failed")
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis connect failed")
	}

	accounts := ledger.PostingAccounts{
		LoanReceivable: cfg.Posting.LoanReceivableAccount,
		Cash:           cfg.Posting.CashAccount,
		MemberSavings:  cfg.Posting.MemberSavingsAccount,
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	savingsRepo := mysql.NewSavingsRepository(gdb)
	guow := mysql.NewGormUoW(gdb)
	notifier := notifyadp.NewLogNotifier(log)

	loans := loanUC.NewUsecase(loanRepo, guow, notifier, log)
	approvals := approvalUC.NewUsecase(guow, notifier, accounts, log)
	repayments := repaymentUC.NewUsecase(guow, notifier, accounts, log)
	statements := savingsUC.NewUsecase(savingsRepo)

	h := httpadp.NewHandler()
	loanHandler := httpadp.NewLoanHandler(loans)
	approvalHandler := httpadp.NewApprovalHandler(approvals)
	repaymentHandler := httpadp.NewRepaymentHandler(repayments)
	savingsHandler := httpadp.NewSavingsHandler(statements)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	idemTTL := time.Duration(cfg.IdempTTLSecs) * time.Second
	api := e.Group("",
		middleware.ActorMiddleware(),
		middleware.IdempotencyMiddleware(rdb, idemTTL, log),
	)
	api.POST("/loans", loanHandler.CreateLoan)
	api.GET("/loans/schedule/preview", loanHandler.PreviewSchedule)
	api.GET("/loans/:loan_id", loanHandler.GetLoan)
	api.POST("/loans/:loan_id/approvals", approvalHandler.SubmitApproval)
	api.POST("/loans/:loan_id/payments", repaymentHandler.RecordPayment)
	api.GET("/members/:member_id/savings", savingsHandler.GetStatement)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
