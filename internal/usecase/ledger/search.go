package ledger

import (
	"strings"

	"pawnledger/internal/domain/loan"
)

// Filter narrows records by a case-insensitive substring match on name,
// phone or item name. An empty query returns the input unchanged; input
// ordering is preserved either way.
func Filter(records []loan.Loan, query string) []loan.Loan {
	if query == "" {
		return records
	}
	q := strings.ToLower(query)
	out := make([]loan.Loan, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Phone), q) ||
			strings.Contains(strings.ToLower(r.ItemName), q) {
			out = append(out, r)
		}
	}
	return out
}
