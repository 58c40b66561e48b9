package ledger

import (
	"context"
	"time"

	"pawnledger/internal/domain/loan"
)

// PurgeExpired permanently deletes Returned loans whose exit date is more
// than three calendar months before now. Runs once at ledger initialization,
// before any read. Returns the number of rows removed.
func PurgeExpired(ctx context.Context, repo loan.Repository, now time.Time) (int64, error) {
	return repo.DeleteReturnedBefore(ctx, now.AddDate(0, -3, 0))
}
