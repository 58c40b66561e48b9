package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "pawnledger/internal/domain/loan"
	"pawnledger/internal/testutil/ledgermock"
	"pawnledger/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func newHandler(loans *ledgermock.LoanRepo, st *ledgermock.SettingsRepo) *LedgerHandler {
	if loans == nil {
		loans = &ledgermock.LoanRepo{}
	}
	if st == nil {
		st = &ledgermock.SettingsRepo{}
	}
	return NewLedgerHandler(ledger.NewUsecase(loans, st))
}

// -------- tests --------

func TestAddLoan_Created(t *testing.T) {
	e := newEchoWithValidator()
	h := newHandler(&ledgermock.LoanRepo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			l.ID = 3
			l.EntryDate = time.Now().UTC()
			return nil
		},
	}, nil)

	reqBody := map[string]any{
		"name":             "Asha Verma",
		"phone":            "9876543210",
		"material_type":    "Gold",
		"item_name":        "Gold Ring",
		"principal_amount": 15000,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AddLoan(c); err != nil {
		t.Fatalf("AddLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}
	var got ledger.LoanDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.ID != 3 || got.Status != "Active" || got.PrincipalAmount != 15000 {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestAddLoan_ValidationFailure(t *testing.T) {
	e := newEchoWithValidator()
	h := newHandler(&ledgermock.LoanRepo{
		CreateFn: func(ctx context.Context, l *domain.Loan) error {
			t.Fatal("Create must not be called")
			return nil
		},
	}, nil)

	reqBody := map[string]any{
		"name":             "Asha",
		"phone":            "987",
		"material_type":    "Platinum",
		"principal_amount": -5,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.AddLoan(c); err != nil {
		t.Fatalf("AddLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(resp.Details, "MaterialType", "Gold or Silver") {
		t.Fatalf("missing material detail: %+v", resp.Details)
	}
	if !containsFieldMsg(resp.Details, "PrincipalAmount", "greater than") {
		t.Fatalf("missing principal detail: %+v", resp.Details)
	}
}

func TestReturnLoan_StatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		repoErr  error
		wantCode int
	}{
		{"success", nil, stdhttp.StatusOK},
		{"not found", domain.ErrNotFound, stdhttp.StatusNotFound},
		{"already returned", domain.ErrAlreadyReturned, stdhttp.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEchoWithValidator()
			h := newHandler(&ledgermock.LoanRepo{
				MarkReturnedFn: func(ctx context.Context, id uint64, at time.Time) error {
					return tc.repoErr
				},
			}, nil)

			req := httptest.NewRequest(stdhttp.MethodPost, "/loans/5/return", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetPath("/loans/:id/return")
			c.SetParamNames("id")
			c.SetParamValues("5")

			if err := h.ReturnLoan(c); err != nil {
				t.Fatalf("ReturnLoan error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
		})
	}
}

func TestReturnLoan_BadID(t *testing.T) {
	e := newEchoWithValidator()
	h := newHandler(nil, nil)

	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/abc/return", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/loans/:id/return")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.ReturnLoan(c); err != nil {
		t.Fatalf("ReturnLoan error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListLoans_ReturnsRows(t *testing.T) {
	e := newEchoWithValidator()
	entry := time.Now().UTC().Add(-48 * time.Hour)
	h := newHandler(&ledgermock.LoanRepo{
		ListAllFn: func(ctx context.Context) ([]domain.Loan, error) {
			return []domain.Loan{
				{ID: 1, Name: "Asha", Phone: "987", MaterialType: domain.MaterialGold,
					ItemName: "Ring", EntryDate: entry, PrincipalAmount: 1000,
					Status: domain.StatusActive},
			}, nil
		},
	}, nil)

	req := httptest.NewRequest(stdhttp.MethodGet, "/loans?q=ring", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListLoans(c); err != nil {
		t.Fatalf("ListLoans error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var rows []ledger.DisplayRow
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Asha" || rows[0].Status != "Active" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[0].DaysHeld < 1.9 || rows[0].DaysHeld > 2.1 {
		t.Fatalf("days held = %v, want ≈2", rows[0].DaysHeld)
	}
}

func TestGetRate(t *testing.T) {
	e := newEchoWithValidator()
	h := newHandler(nil, &ledgermock.SettingsRepo{
		GetDailyInterestRateFn: func(ctx context.Context) (float64, error) { return 0.25, nil },
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/settings/interest-rate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetRate(c); err != nil {
		t.Fatalf("GetRate error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp rateResp
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if resp.DailyInterestRate != 0.25 {
		t.Fatalf("rate = %v, want 0.25", resp.DailyInterestRate)
	}
}

func TestSetRate_OutOfRange(t *testing.T) {
	e := newEchoWithValidator()
	h := newHandler(nil, &ledgermock.SettingsRepo{
		SetDailyInterestRateFn: func(ctx context.Context, v float64) error {
			t.Fatal("store must not be touched")
			return nil
		},
	})

	req := httptest.NewRequest(stdhttp.MethodPut, "/settings/interest-rate",
		mustJSON(map[string]any{"daily_interest_rate": 12.5}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SetRate(c); err != nil {
		t.Fatalf("SetRate error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestSetRate_OK(t *testing.T) {
	e := newEchoWithValidator()
	var stored float64
	h := newHandler(nil, &ledgermock.SettingsRepo{
		SetDailyInterestRateFn: func(ctx context.Context, v float64) error {
			stored = v
			return nil
		},
	})

	req := httptest.NewRequest(stdhttp.MethodPut, "/settings/interest-rate",
		mustJSON(map[string]any{"daily_interest_rate": 0.5}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SetRate(c); err != nil {
		t.Fatalf("SetRate error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	if stored != 0.5 {
		t.Fatalf("stored = %v, want 0.5", stored)
	}
}
