package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/cigo/compound-calculator/internal/domain"
)

// Project maps a validated input record to its full projection: final
// balance, running totals, and one yearly snapshot per elapsed year plus a
// trailing partial-year snapshot when the horizon ends mid-year.
//
// The simulation always steps month by month. The nominal annual rate
// compounded N times per year is first converted to the equivalent effective
// monthly rate, which is what lets one loop serve yearly, quarterly, monthly
// and daily compounding uniformly. Fractional-year horizons are rounded to
// the nearest whole month (minimum one step); this is a documented
// approximation, not continuous-time simulation.
//
// Project is a total function over the documented input domain and performs
// no validation and no rounding. Rounding to currency granularity is a
// presentation concern; accumulating rounded values would compound the error.
func (e *Engine) Project(input domain.CalculationInput) domain.CalculationResult {
	annualRate := input.AnnualRatePercent.InexactFloat64() / 100

	months := int(math.Round(input.Years * 12))
	if months < 1 {
		months = 1
	}

	// Effective monthly rate: (1 + annual/n)^(n/12) - 1. The exponent is
	// fractional for anything but monthly compounding, so this one
	// conversion runs through float64 before re-entering decimal.
	monthlyRate := math.Pow(1+annualRate/input.CompoundsPerYear, input.CompoundsPerYear/12) - 1
	growth := decimal.NewFromInt(1).Add(decimal.NewFromFloat(monthlyRate))

	e.Logger.Debugf("projection: months=%d monthlyRate=%.10f", months, monthlyRate)

	// Principal seeds both the balance and the contribution total, so the
	// reconciliation invariant (interest = balance - contributions) holds
	// from the first row onward.
	balance := input.Principal
	totalContributions := input.Principal

	// Previous emitted snapshot; per-year figures are always "this row minus
	// previous row" so the yearly deltas reconcile exactly to the totals.
	prevBalance := input.Principal
	prevContributions := input.Principal

	rows := make([]domain.YearlyRow, 0, (months+11)/12)

	for month := 1; month <= months; month++ {
		contribution := decimal.Zero
		if input.ContributionFrequency == domain.FrequencyAnnual {
			if month%12 == 0 {
				contribution = input.ContributionAmount
			}
		} else {
			contribution = input.ContributionAmount
		}

		// Growth first, then the deposit.
		balance = balance.Mul(growth).Add(contribution)
		totalContributions = totalContributions.Add(contribution)

		if month%12 == 0 || month == months {
			yearlyContributions := totalContributions.Sub(prevContributions)
			rows = append(rows, domain.YearlyRow{
				YearNumber:          (month + 11) / 12,
				IsPartial:           month%12 != 0,
				EndBalance:          balance,
				YearlyContributions: yearlyContributions,
				YearlyInterest:      balance.Sub(prevBalance).Sub(yearlyContributions),
				TotalContributions:  totalContributions,
				TotalInterest:       balance.Sub(totalContributions),
			})
			prevBalance = balance
			prevContributions = totalContributions
		}
	}

	return domain.CalculationResult{
		FinalAmount:        balance,
		TotalContributions: totalContributions,
		TotalInterest:      balance.Sub(totalContributions),
		Rows:               rows,
	}
}
