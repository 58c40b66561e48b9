package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "pawnledger/internal/adapter/http"
	"pawnledger/internal/adapter/middleware"
	"pawnledger/internal/adapter/repository/gormrepo"
	"pawnledger/internal/config"
	"pawnledger/internal/infrastructure/cache"
	"pawnledger/internal/infrastructure/db"
	"pawnledger/internal/usecase/ledger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup fires on every path.
func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.Printf("db close: %v", err)
		}
	}()

	if err := db.Migrate(gdb); err != nil {
		return err
	}

	uc := ledger.NewUsecase(gormrepo.NewLoanRepository(gdb), gormrepo.NewSettingsRepository(gdb))

	alerts, err := uc.Initialize(context.Background())
	if err != nil {
		return err
	}
	for _, a := range alerts {
		log.Printf("overdue: item held over 1 year: %s - %s (since %s)",
			a.Name, a.ItemName, a.EntryDate.Format("02-01-2006"))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	h := httpadp.NewHandler()
	lh := httpadp.NewLedgerHandler(uc)

	e.GET("/health", h.Health)
	e.GET("/loans", lh.ListLoans)
	e.POST("/loans", lh.AddLoan)
	e.POST("/loans/:id/return", lh.ReturnLoan)
	e.GET("/settings/interest-rate", lh.GetRate)
	e.PUT("/settings/interest-rate", lh.SetRate)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	return e.Start(addr)
}
