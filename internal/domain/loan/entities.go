package loan

import (
	"errors"
	"time"
)

type MaterialType string

const (
	MaterialGold   MaterialType = "Gold"
	MaterialSilver MaterialType = "Silver"
)

// ValidMaterial reports whether m is one of the two accepted pawn materials.
func ValidMaterial(m MaterialType) bool {
	return m == MaterialGold || m == MaterialSilver
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusReturned Status = "Returned"
)

var (
	ErrNotFound        = errors.New("loan not found")
	ErrAlreadyReturned = errors.New("loan already returned")
	ErrValidation      = errors.New("invalid loan input")
)

// Loan is one pawned item held against a cash loan.
// ExitDate is nil exactly while Status is Active.
type Loan struct {
	ID              uint64       `gorm:"primaryKey;column:id" json:"id"`
	Name            string       `gorm:"size:255;not null" json:"name"`
	Phone           string       `gorm:"size:32;not null" json:"phone"`
	MaterialType    MaterialType `gorm:"size:16;column:material_type" json:"material_type"`
	ItemName        string       `gorm:"size:255;column:item_name" json:"item_name"`
	EntryDate       time.Time    `gorm:"column:entry_date" json:"entry_date"`
	ExitDate        *time.Time   `gorm:"column:exit_date" json:"exit_date,omitempty"`
	PrincipalAmount float64      `gorm:"type:decimal(18,2);column:principal_amount" json:"principal_amount"`
	Status          Status       `gorm:"size:16;default:'Active'" json:"status"`
}

func (Loan) TableName() string { return "loans" }
