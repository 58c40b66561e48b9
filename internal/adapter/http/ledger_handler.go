package http

import (
	"net/http"
	"strconv"

	"pawnledger/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

type LedgerHandler struct{ uc *ledger.Usecase }

func NewLedgerHandler(uc *ledger.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type addLoanReq struct {
	Name            string  `json:"name"             validate:"required"`
	Phone           string  `json:"phone"            validate:"required"`
	MaterialType    string  `json:"material_type"    validate:"required,material"`
	ItemName        string  `json:"item_name"`
	PrincipalAmount float64 `json:"principal_amount" validate:"required,gt=0,dec2"`
}

func (h *LedgerHandler) AddLoan(c echo.Context) error {
	var req addLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AddLoan(c.Request().Context(), ledger.AddLoanInput{
		Name:            req.Name,
		Phone:           req.Phone,
		MaterialType:    req.MaterialType,
		ItemName:        req.ItemName,
		PrincipalAmount: req.PrincipalAmount,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LedgerHandler) ReturnLoan(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	if err := h.uc.ReturnLoan(c.Request().Context(), id); err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "returned"})
}

func (h *LedgerHandler) ListLoans(c echo.Context) error {
	rows, err := h.uc.Query(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type rateResp struct {
	DailyInterestRate float64 `json:"daily_interest_rate"`
}

func (h *LedgerHandler) GetRate(c echo.Context) error {
	rate, err := h.uc.GetRate(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rateResp{DailyInterestRate: rate})
}

type setRateReq struct {
	DailyInterestRate float64 `json:"daily_interest_rate" validate:"required,gt=0,lte=10"`
}

func (h *LedgerHandler) SetRate(c echo.Context) error {
	var req setRateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.SetRate(c.Request().Context(), req.DailyInterestRate); err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, rateResp{DailyInterestRate: req.DailyInterestRate})
}
