package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"pawnledger/internal/domain/loan"
	"pawnledger/internal/domain/settings"
)

const entryDateLayout = "02-01-2006"

// Usecase is the ledger facade the presentation layer drives. Mutations are
// serialized through mu so a second caller can never observe a partially
// applied write; reads are single-query snapshots and need no lock.
type Usecase struct {
	mu       sync.Mutex
	loans    loan.Repository
	settings settings.Repository
}

func NewUsecase(loans loan.Repository, s settings.Repository) *Usecase {
	return &Usecase{loans: loans, settings: s}
}

// Initialize purges closed loans past the retention window, then scans the
// remaining records for long-held items. The caller decides how to present
// the returned alerts.
func (u *Usecase) Initialize(ctx context.Context) ([]OverdueAlert, error) {
	now := time.Now().UTC()

	u.mu.Lock()
	_, err := PurgeExpired(ctx, u.loans, now)
	u.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("retention purge: %w", err)
	}

	records, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return DetectOverdue(records, now), nil
}

func (u *Usecase) AddLoan(ctx context.Context, in AddLoanInput) (*LoanDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", loan.ErrValidation)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", loan.ErrValidation)
	}
	if !loan.ValidMaterial(loan.MaterialType(in.MaterialType)) {
		return nil, fmt.Errorf("%w: material type must be Gold or Silver", loan.ErrValidation)
	}
	if in.PrincipalAmount <= 0 {
		return nil, fmt.Errorf("%w: principal amount must be positive", loan.ErrValidation)
	}

	l := &loan.Loan{
		Name:            in.Name,
		Phone:           in.Phone,
		MaterialType:    loan.MaterialType(in.MaterialType),
		ItemName:        in.ItemName,
		PrincipalAmount: in.PrincipalAmount,
		Status:          loan.StatusActive,
	}

	u.mu.Lock()
	err := u.loans.Create(ctx, l)
	u.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return &LoanDTO{
		ID:              l.ID,
		Name:            l.Name,
		Phone:           l.Phone,
		MaterialType:    string(l.MaterialType),
		ItemName:        l.ItemName,
		PrincipalAmount: l.PrincipalAmount,
		Status:          string(l.Status),
		EntryDate:       l.EntryDate,
	}, nil
}

func (u *Usecase) ReturnLoan(ctx context.Context, id uint64) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loans.MarkReturned(ctx, id, time.Now().UTC())
}

// Query lists loans matching searchText with accrued interest computed at
// the current global rate. Rows come back in ascending id order.
func (u *Usecase) Query(ctx context.Context, searchText string) ([]DisplayRow, error) {
	rate, err := u.settings.GetDailyInterestRate(ctx)
	if err != nil {
		return nil, err
	}
	records, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	matched := Filter(records, searchText)
	rows := make([]DisplayRow, 0, len(matched))
	for _, r := range matched {
		days := DaysHeld(r.EntryDate, r.ExitDate, now)
		rows = append(rows, DisplayRow{
			ID:           r.ID,
			Name:         r.Name,
			Phone:        r.Phone,
			MaterialType: string(r.MaterialType),
			ItemName:     r.ItemName,
			EntryDate:    r.EntryDate.Format(entryDateLayout),
			Status:       string(r.Status),
			DaysHeld:     days,
			InterestOwed: InterestOwed(r.PrincipalAmount, days, rate),
			Overdue:      Overdue(days),
		})
	}
	return rows, nil
}

func (u *Usecase) GetRate(ctx context.Context) (float64, error) {
	return u.settings.GetDailyInterestRate(ctx)
}

func (u *Usecase) SetRate(ctx context.Context, v float64) error {
	if err := settings.ValidateRate(v); err != nil {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.settings.SetDailyInterestRate(ctx, v)
}
