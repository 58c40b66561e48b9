package settings

import "errors"

const (
	KeyDailyInterestRate = "DailyInterestRate"
	// DefaultDailyInterestRate is seeded on first read if the key is absent.
	DefaultDailyInterestRate = 0.1
)

var ErrInvalidRate = errors.New("daily interest rate must be in (0, 10] percent")

// ValidateRate enforces the allowed range for the daily interest rate.
func ValidateRate(v float64) error {
	if v <= 0 || v > 10 {
		return ErrInvalidRate
	}
	return nil
}

// Setting is one key/value row; values are stored as text.
type Setting struct {
	Key   string `gorm:"primaryKey;size:64;column:key"`
	Value string `gorm:"size:64;column:value"`
}

func (Setting) TableName() string { return "settings" }
