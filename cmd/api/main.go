package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "vestra-backend/internal/adapter/http"
	mw "vestra-backend/internal/adapter/middleware"
	"vestra-backend/internal/adapter/repository/mysql"
	"vestra-backend/internal/config"
	"vestra-backend/internal/infrastructure/cache"
	"vestra-backend/internal/infrastructure/db"
	"vestra-backend/internal/notify"
	accrualUC "vestra-backend/internal/usecase/accrual"
	bonusUC "vestra-backend/internal/usecase/bonus"
	invUC "vestra-backend/internal/usecase/investment"
	settingsUC "vestra-backend/internal/usecase/settings"
	wdUC "vestra-backend/internal/usecase/withdrawal"
	"vestra-backend/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	sink := notify.NewLogSink(256)
	sink.Start()
	defer sink.Stop()

	// repositories + unit of work
	investments := mysql.NewInvestmentRepository(gdb)
	wallets := mysql.NewWalletRepository(gdb)
	transactions := mysql.NewTransactionRepository(gdb)
	settingsRepo := mysql.NewSettingsRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	// usecases
	settingsSvc := settingsUC.NewUsecase(settingsRepo, rdb, cfg.SettingsCacheTTL())
	engine := accrualUC.NewUsecase(investments, wallets, transactions, settingsSvc, sink, cfg.AccrualTick())
	investSvc := invUC.NewUsecase(uow, settingsSvc, sink)
	bonusSvc := bonusUC.NewUsecase(uow, settingsSvc, sink)
	withdrawSvc := wdUC.NewUsecase(uow, settingsSvc, sink)

	// background accrual scheduler
	accrualWorker := worker.NewAccrualWorker(engine, cfg.AccrualTick())
	accrualWorker.Start()
	defer accrualWorker.Stop()

	// handlers
	h := httpadp.NewHandler()
	invHandler := httpadp.NewInvestmentHandler(investSvc)
	wdHandler := httpadp.NewWithdrawalHandler(withdrawSvc)
	bonusHandler := httpadp.NewBonusHandler(bonusSvc)
	walletHandler := httpadp.NewWalletHandler(wallets)
	accrualHandler := httpadp.NewAccrualHandler(engine)
	settingsHandler := httpadp.NewSettingsHandler(settingsSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)
	e.POST("/investments", invHandler.CreateInvestment)
	e.GET("/investments/:investment_id", invHandler.GetInvestment)
	e.POST("/investments/:investment_id/cancel", invHandler.CancelInvestment)
	e.POST("/accrual/tick", accrualHandler.TriggerTick)
	e.POST("/withdrawals", wdHandler.RequestWithdrawal)
	e.POST("/webhooks/payouts", wdHandler.PayoutOutcome)
	e.GET("/bonuses/eligibility", bonusHandler.CheckEligibility)
	e.POST("/bonuses/withdraw", bonusHandler.WithdrawBonus)
	e.GET("/wallet", walletHandler.GetWallet)
	e.GET("/admin/settings", settingsHandler.GetSettings)
	e.PUT("/admin/settings", settingsHandler.UpdateSettings)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
