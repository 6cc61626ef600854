// Package amortization computes annuity repayment schedules. All arithmetic
// is decimal; per-period figures round to 2 dp and the final period absorbs
// the residual so principal portions always sum exactly to the principal.
package amortization

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("amortization: invalid input")

type Frequency string

const (
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Annually  Frequency = "annually"
)

// MonthsPerPeriod returns 0 for unknown frequencies.
func (f Frequency) MonthsPerPeriod() int {
	switch f {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case Annually:
		return 12
	}
	return 0
}

type Line struct {
	Period           int             `json:"period"`
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	Balance          decimal.Decimal `json:"balance"`
}

type Schedule struct {
	PeriodicPayment decimal.Decimal `json:"periodic_payment"`
	TotalPayment    decimal.Decimal `json:"total_payment"`
	TotalInterest   decimal.Decimal `json:"total_interest"`
	Lines           []Line          `json:"schedule"`
}

// Periods is the number of repayment periods a term maps to under f,
// rounding partial trailing periods up.
func Periods(termMonths int, f Frequency) int {
	m := f.MonthsPerPeriod()
	if m == 0 || termMonths < 1 {
		return 0
	}
	return (termMonths + m - 1) / m
}

// Compute builds the full schedule for a principal at an annual percentage
// rate over termMonths, repaid at the given frequency.
//
// The periodic rate is the monthly rate (annual/100/12) scaled by the months
// per period; the payment is the standard annuity P*r*(1+r)^n / ((1+r)^n - 1).
// A zero rate degenerates to principal/n with no interest.
func Compute(principal, annualRatePercent decimal.Decimal, termMonths int, freq Frequency) (*Schedule, error) {
	n := Periods(termMonths, freq)
	if n == 0 || !principal.IsPositive() || annualRatePercent.IsNegative() {
		return nil, ErrInvalidInput
	}

	one := decimal.NewFromInt(1)
	periods := decimal.NewFromInt(int64(n))
	rate := annualRatePercent.
		Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(12)).
		Mul(decimal.NewFromInt(int64(freq.MonthsPerPeriod())))

	var payment decimal.Decimal
	if rate.IsZero() {
		payment = principal.DivRound(periods, 2)
	} else {
		growth := one.Add(rate).Pow(periods)
		payment = principal.Mul(rate).Mul(growth).DivRound(growth.Sub(one), 2)
	}

	s := &Schedule{PeriodicPayment: payment, Lines: make([]Line, 0, n)}
	balance := principal
	for p := 1; p <= n && balance.IsPositive(); p++ {
		interest := balance.Mul(rate).Round(2)
		principalPart := payment.Sub(interest)
		pay := payment
		// Final period (or rounding drift overshooting the balance early)
		// settles whatever is left instead of the nominal payment.
		if p == n || principalPart.GreaterThanOrEqual(balance) {
			principalPart = balance
			pay = balance.Add(interest)
		}
		balance = balance.Sub(principalPart)
		s.TotalPayment = s.TotalPayment.Add(pay)
		s.TotalInterest = s.TotalInterest.Add(interest)
		s.Lines = append(s.Lines, Line{
			Period:           p,
			Payment:          pay,
			PrincipalPortion: principalPart,
			InterestPortion:  interest,
			Balance:          balance,
		})
	}
	return s, nil
}
