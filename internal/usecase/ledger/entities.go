package ledger

import (
	"time"
)

type AddLoanInput struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	MaterialType    string  `json:"material_type"`
	ItemName        string  `json:"item_name"`
	PrincipalAmount float64 `json:"principal_amount"`
}

type LoanDTO struct {
	ID              uint64    `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	MaterialType    string    `json:"material_type"`
	ItemName        string    `json:"item_name"`
	PrincipalAmount float64   `json:"principal_amount"`
	Status          string    `json:"status"`
	EntryDate       time.Time `json:"entry_date"`
}

// DisplayRow is one table row as the presentation layer shows it.
// EntryDate is pre-formatted DD-MM-YYYY; Overdue drives row highlighting.
type DisplayRow struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	MaterialType string  `json:"material_type"`
	ItemName     string  `json:"item_name"`
	EntryDate    string  `json:"entry_date"`
	Status       string  `json:"status"`
	DaysHeld     float64 `json:"days_held"`
	InterestOwed float64 `json:"interest_owed"`
	Overdue      bool    `json:"overdue"`
}

type OverdueAlert struct {
	Name      string    `json:"name"`
	ItemName  string    `json:"item_name"`
	EntryDate time.Time `json:"entry_date"`
}
