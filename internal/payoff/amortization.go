package payoff

import "math"

// Unpayable is the month count reported for a debt whose payment never
// covers the monthly interest.
const Unpayable = -1

// IsUnpayable reports if months is the Unpayable sentinel.
func IsUnpayable(months int) bool {
	return months == Unpayable
}

func monthlyRate(annualRate float64) float64 {
	return annualRate / 100 / 12
}

// PayoffMonths returns the number of months it takes to pay off balance
// with a fixed monthlyPayment at the given annual interest rate in percent.
//
// The debt is treated in isolation. A non-positive balance or payment
// returns 0, a payment that does not exceed the monthly interest returns
// Unpayable.
func PayoffMonths(balance, monthlyPayment, annualRate float64) int {
	if monthlyPayment <= 0 || balance <= 0 {
		return 0
	}

	r := monthlyRate(annualRate)
	if r == 0 {
		return int(math.Ceil(balance / monthlyPayment))
	}

	if monthlyPayment <= balance*r {
		return Unpayable
	}

	// n = -ln(1 - B*r/P) / ln(1 + r)
	n := math.Abs(math.Log1p(-balance*r/monthlyPayment) / math.Log1p(r))
	if math.IsNaN(n) || math.IsInf(n, 0) {
		// Rates this small are interest free in float64
		return int(math.Ceil(balance / monthlyPayment))
	}

	// Rounding noise must not add a month
	return int(math.Ceil(n - monthsTolerance))
}

// monthsTolerance is the part of a month that is ignored when rounding up
// the result of the closed formula.
const monthsTolerance = 1e-9

// TotalInterest returns the interest paid over the lifetime of a debt
// paid with a fixed monthlyPayment.
//
// It is 0 when the debt is already paid off or can never be paid off.
func TotalInterest(balance, monthlyPayment, annualRate float64) float64 {
	months := PayoffMonths(balance, monthlyPayment, annualRate)
	if months == 0 || IsUnpayable(months) {
		return 0
	}

	return monthlyPayment*float64(months) - balance
}
