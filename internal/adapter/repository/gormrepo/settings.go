package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	settingsDomain "pawnledger/internal/domain/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{db: db} }

// GetDailyInterestRate reads the rate, seeding the default row on first use.
// The value is stored as decimal text.
func (r *SettingsRepository) GetDailyInterestRate(ctx context.Context) (float64, error) {
	var s settingsDomain.Setting
	// Struct condition so the reserved `key` column is quoted on every driver.
	err := r.db.WithContext(ctx).
		Where(&settingsDomain.Setting{Key: settingsDomain.KeyDailyInterestRate}).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = settingsDomain.Setting{
			Key:   settingsDomain.KeyDailyInterestRate,
			Value: strconv.FormatFloat(settingsDomain.DefaultDailyInterestRate, 'f', -1, 64),
		}
		if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
			return 0, err
		}
		return settingsDomain.DefaultDailyInterestRate, nil
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed %s value %q: %w", settingsDomain.KeyDailyInterestRate, s.Value, err)
	}
	return v, nil
}

func (r *SettingsRepository) SetDailyInterestRate(ctx context.Context, v float64) error {
	if err := settingsDomain.ValidateRate(v); err != nil {
		return err
	}
	s := settingsDomain.Setting{
		Key:   settingsDomain.KeyDailyInterestRate,
		Value: strconv.FormatFloat(v, 'f', -1, 64),
	}
	// Upsert: the row may not exist yet if the rate is set before any read.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&s).Error
}
