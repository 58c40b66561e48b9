package ledgermock

import (
	"context"
	"time"

	loanDomain "pawnledger/internal/domain/loan"
)

// LoanRepo is a function-backed mock satisfying loan.Repository.
// Only the hooks a test sets are exercised.
type LoanRepo struct {
	CreateFn               func(ctx context.Context, l *loanDomain.Loan) error
	GetByIDFn              func(ctx context.Context, id uint64) (*loanDomain.Loan, error)
	ListAllFn              func(ctx context.Context) ([]loanDomain.Loan, error)
	MarkReturnedFn         func(ctx context.Context, id uint64, at time.Time) error
	DeleteReturnedBeforeFn func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *LoanRepo) Create(ctx context.Context, l *loanDomain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *LoanRepo) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, loanDomain.ErrNotFound
}

func (m *LoanRepo) ListAll(ctx context.Context) ([]loanDomain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *LoanRepo) MarkReturned(ctx context.Context, id uint64, at time.Time) error {
	if m.MarkReturnedFn != nil {
		return m.MarkReturnedFn(ctx, id, at)
	}
	return nil
}

func (m *LoanRepo) DeleteReturnedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteReturnedBeforeFn != nil {
		return m.DeleteReturnedBeforeFn(ctx, cutoff)
	}
	return 0, nil
}
