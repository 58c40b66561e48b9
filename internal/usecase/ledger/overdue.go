package ledger

import (
	"time"

	"pawnledger/internal/domain/loan"
)

// DetectOverdue lists Active loans whose entry date lies more than one
// calendar year before now. Returned loans never qualify regardless of age.
// Pure read; runs once at ledger initialization.
func DetectOverdue(records []loan.Loan, now time.Time) []OverdueAlert {
	cutoff := now.AddDate(-1, 0, 0)
	var alerts []OverdueAlert
	for _, r := range records {
		if r.Status != loan.StatusActive {
			continue
		}
		if r.EntryDate.Before(cutoff) {
			alerts = append(alerts, OverdueAlert{
				Name:      r.Name,
				ItemName:  r.ItemName,
				EntryDate: r.EntryDate,
			})
		}
	}
	return alerts
}
