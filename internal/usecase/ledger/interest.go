package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// overdueHighlightDays is the row-highlight threshold on the continuous day
// count. Distinct from the one-calendar-year cutoff used for startup alerts.
const overdueHighlightDays = 365

var hundred = decimal.NewFromInt(100)

// DaysHeld is the continuous (fractional) day count a pawned item has been
// held: elapsed time from entry to exit (or now for an open loan) divided by
// 24h. Two loans entered hours apart accrue proportionally different interest.
func DaysHeld(entry time.Time, exit *time.Time, now time.Time) float64 {
	end := now
	if exit != nil {
		end = *exit
	}
	return end.Sub(entry).Hours() / 24
}

// InterestOwed computes principal × daysHeld × dailyRate / 100, rounded
// half-up to 2 decimals. dailyRate is a percentage per day.
func InterestOwed(principal, daysHeld, dailyRate float64) float64 {
	owed := decimal.NewFromFloat(principal).
		Mul(decimal.NewFromFloat(daysHeld)).
		Mul(decimal.NewFromFloat(dailyRate)).
		Div(hundred).
		Round(2)
	f, _ := owed.Float64()
	return f
}

// Overdue reports whether the continuous day count exceeds the highlight
// threshold.
func Overdue(daysHeld float64) bool { return daysHeld > overdueHighlightDays }
