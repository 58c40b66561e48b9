package ledgermock

import "context"

// SettingsRepo is a function-backed mock satisfying settings.Repository.
// With no hooks set it behaves like a fresh store holding the default rate.
type SettingsRepo struct {
	GetDailyInterestRateFn func(ctx context.Context) (float64, error)
	SetDailyInterestRateFn func(ctx context.Context, v float64) error
}

func (m *SettingsRepo) GetDailyInterestRate(ctx context.Context) (float64, error) {
	if m.GetDailyInterestRateFn != nil {
		return m.GetDailyInterestRateFn(ctx)
	}
	return 0.1, nil
}

func (m *SettingsRepo) SetDailyInterestRate(ctx context.Context, v float64) error {
	if m.SetDailyInterestRateFn != nil {
		return m.SetDailyInterestRateFn(ctx, v)
	}
	return nil
}
