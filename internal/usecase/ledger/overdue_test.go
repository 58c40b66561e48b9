package ledger

import (
	"testing"
	"time"

	"pawnledger/internal/domain/loan"
)

func TestDetectOverdue_FlagsActiveHeldOverOneYear(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	old := now.AddDate(0, -13, 0)

	records := []loan.Loan{
		{ID: 1, Name: "Asha", ItemName: "Gold Ring", Status: loan.StatusActive, EntryDate: old},
	}
	alerts := DetectOverdue(records, now)
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(alerts))
	}
	a := alerts[0]
	if a.Name != "Asha" || a.ItemName != "Gold Ring" || !a.EntryDate.Equal(old) {
		t.Fatalf("unexpected alert: %+v", a)
	}
}

func TestDetectOverdue_ReturnedNeverQualifies(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	old := now.AddDate(0, -13, 0)
	exit := now.AddDate(0, -1, 0)

	records := []loan.Loan{
		{ID: 1, Name: "Ravi", ItemName: "Anklet", Status: loan.StatusReturned, EntryDate: old, ExitDate: &exit},
	}
	if alerts := DetectOverdue(records, now); len(alerts) != 0 {
		t.Fatalf("returned loan must not alert, got %+v", alerts)
	}
}

func TestDetectOverdue_CalendarYearBoundary(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	records := []loan.Loan{
		// 11 months: inside the year, no alert
		{ID: 1, Status: loan.StatusActive, EntryDate: now.AddDate(0, -11, 0)},
		// exactly one calendar year: not *more than* a year, no alert
		{ID: 2, Status: loan.StatusActive, EntryDate: now.AddDate(-1, 0, 0)},
		// one year and a day: alert
		{ID: 3, Name: "Meena", Status: loan.StatusActive, EntryDate: now.AddDate(-1, 0, -1)},
	}
	alerts := DetectOverdue(records, now)
	if len(alerts) != 1 || alerts[0].Name != "Meena" {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}
}

func TestDetectOverdue_Empty(t *testing.T) {
	if alerts := DetectOverdue(nil, time.Now().UTC()); len(alerts) != 0 {
		t.Fatalf("want no alerts, got %+v", alerts)
	}
}
