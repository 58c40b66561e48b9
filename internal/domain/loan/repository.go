package loan

import (
	"context"
	"time"
)

type Repository interface {
	// Create assigns the id and defaults entry_date to the creation time.
	Create(ctx context.Context, l *Loan) error

	GetByID(ctx context.Context, id uint64) (*Loan, error)

	// ListAll returns every loan in ascending id order.
	ListAll(ctx context.Context) ([]Loan, error)

	// MarkReturned transitions Active → Returned and stamps exit_date = at.
	// Fails with ErrNotFound for an unknown id and ErrAlreadyReturned if the
	// loan is already closed; on error the row is left untouched.
	MarkReturned(ctx context.Context, id uint64, at time.Time) error

	// DeleteReturnedBefore permanently removes Returned loans whose
	// exit_date is before cutoff and returns the number removed.
	DeleteReturnedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
