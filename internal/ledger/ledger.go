// Package ledger holds the valuation and credit-ledger rules: stock
// total value, Udhar outstanding balances, and calendar-day handling
// for daily metal rates. Monetary results are computed with decimals
// and converted back to float64 only at the storage boundary.
package ledger

import (
	"time"

	"girvi-backend/internal/models"

	"github.com/shopspring/decimal"
)

// StockTotalValue computes the persisted total value of a stock item:
// price plus making charge. Computed once at creation, immutable after.
func StockTotalValue(price, makingCharge float64) float64 {
	total := decimal.NewFromFloat(price).Add(decimal.NewFromFloat(makingCharge))
	f, _ := total.Float64()
	return f
}

// Balance is the settlement position of one Udhar entry.
type Balance struct {
	Amount      float64 `json:"amount"`
	TotalPaid   float64 `json:"total_paid"`
	Outstanding float64 `json:"outstanding"`
	Overpaid    bool    `json:"overpaid"`
}

// OutstandingBalance computes amount minus the sum of settlement amounts.
// Overpayment is allowed; the Overpaid flag tells the caller the
// settlements exceed the original amount.
func OutstandingBalance(amount float64, settlements []models.UdharSettlement) Balance {
	paid := decimal.Zero
	for _, s := range settlements {
		paid = paid.Add(decimal.NewFromFloat(s.Amount))
	}

	outstanding := decimal.NewFromFloat(amount).Sub(paid)

	totalPaid, _ := paid.Float64()
	out, _ := outstanding.Float64()
	return Balance{
		Amount:      amount,
		TotalPaid:   totalPaid,
		Outstanding: out,
		Overpaid:    outstanding.IsNegative(),
	}
}

// SumAmounts adds a list of float64 amounts through decimals, so the
// dashboard aggregates don't accumulate float drift.
func SumAmounts(amounts []float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Float64()
	return f
}

// DayOf truncates a timestamp to midnight UTC. Daily rates are stored
// and compared at day granularity, never at full timestamp precision.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange returns the half-open [start, end) interval covering the
// calendar day of t, for range queries against the rate table.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := DayOf(t)
	return start, start.Add(24 * time.Hour)
}

// ValidMaterialType reports whether s is one of the accepted material types.
func ValidMaterialType(s string) bool {
	switch s {
	case models.MaterialGold, models.MaterialSilver, models.MaterialPlatinum,
		models.MaterialDiamond, models.MaterialOther:
		return true
	}
	return false
}
