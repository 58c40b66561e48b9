package settings

import "context"

type Repository interface {
	// GetDailyInterestRate seeds the default value if the key is absent.
	GetDailyInterestRate(ctx context.Context) (float64, error)

	// SetDailyInterestRate rejects values outside (0, 10] with ErrInvalidRate.
	SetDailyInterestRate(ctx context.Context, v float64) error
}
