package gormrepo

import (
	"context"
	"errors"
	"time"

	loanDomain "pawnledger/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	if l.EntryDate.IsZero() {
		l.EntryDate = time.Now().UTC()
	}
	if l.Status == "" {
		l.Status = loanDomain.StatusActive
	}
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) ListAll(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

// MarkReturned runs in a transaction so the status check and the update are
// one atomic step: either the row flips Active → Returned or nothing changes.
func (r *LoanRepository) MarkReturned(ctx context.Context, id uint64, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var l loanDomain.Loan
		if err := tx.Where("id = ?", id).First(&l).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loanDomain.ErrNotFound
			}
			return err
		}
		if l.Status == loanDomain.StatusReturned {
			return loanDomain.ErrAlreadyReturned
		}
		l.Status = loanDomain.StatusReturned
		exit := at
		l.ExitDate = &exit
		return tx.Save(&l).Error
	})
}

func (r *LoanRepository) DeleteReturnedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status = ? AND exit_date < ?", loanDomain.StatusReturned, cutoff).
		Delete(&loanDomain.Loan{})
	return res.RowsAffected, res.Error
}
