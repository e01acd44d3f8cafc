package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vestra-backend/internal/domain/currency"
	"vestra-backend/internal/domain/uow"
	userDomain "vestra-backend/internal/domain/user"
	walletDomain "vestra-backend/internal/domain/wallet"
	"vestra-backend/internal/testutil/notifymock"
	"vestra-backend/internal/testutil/settingsmock"
	"vestra-backend/internal/testutil/txmock"
	"vestra-backend/internal/testutil/usermock"
	"vestra-backend/internal/testutil/walletmock"
	uc "vestra-backend/internal/usecase/bonus"

	"github.com/labstack/echo/v4"
)

func TestCheckEligibility_NotMaturedYet(t *testing.T) {
	e := newEchoWithValidator()
	first := time.Now().UTC().Add(-24 * time.Hour)
	repos := uow.Repos{Users: &usermock.Repo{
		GetByUserIDFn: func(context.Context, string) (*userDomain.User, error) {
			return &userDomain.User{UserID: testUserID, FirstActiveInvestmentDate: &first}, nil
		},
	}}
	h := NewBonusHandler(uc.NewUsecase(passthroughUoW(repos), settingsmock.Production(), &notifymock.Sink{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/bonuses/eligibility", nil)
	req.Header.Set("Ax-User-Id", testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CheckEligibility(c); err != nil {
		t.Fatalf("CheckEligibility error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got uc.EligibilityDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Eligible || got.TimeRemaining == "" {
		t.Fatalf("want ineligible with remaining wait, got %+v", got)
	}
}

func TestWithdrawBonus_DefaultsToNaira(t *testing.T) {
	e := newEchoWithValidator()
	prior := time.Now().UTC().Add(-time.Hour)
	var unlocked float64
	repos := uow.Repos{
		Users: &usermock.Repo{
			GetByUserIDFn: func(context.Context, string) (*userDomain.User, error) {
				return &userDomain.User{UserID: testUserID, LastBonusWithdrawalDate: &prior}, nil
			},
		},
		Wallets: &walletmock.Repo{
			GetByUserIDFn: func(context.Context, string) (*walletDomain.Wallet, error) {
				return &walletDomain.Wallet{
					UserID:                    testUserID,
					LockedNairaWelcomeBonuses: 1_000,
					LockedNairaBonuses:        1_000,
				}, nil
			},
			UnlockBonusFn: func(_ context.Context, _ string, cur currency.Currency, welcomePart, _ float64) error {
				if cur != currency.Naira {
					t.Fatalf("empty currency must default to naira, got %s", cur)
				}
				unlocked = welcomePart
				return nil
			},
		},
		Transactions: &txmock.Repo{},
	}
	h := NewBonusHandler(uc.NewUsecase(passthroughUoW(repos), settingsmock.Production(), &notifymock.Sink{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/bonuses/withdraw", mustJSON(map[string]any{}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Ax-User-Id", testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.WithdrawBonus(c); err != nil {
		t.Fatalf("WithdrawBonus error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if unlocked != 1_000 {
		t.Fatalf("unlock amount: want 1000, got %v", unlocked)
	}
}

func TestWithdrawBonus_NotMatured_400(t *testing.T) {
	e := newEchoWithValidator()
	repos := uow.Repos{Users: &usermock.Repo{
		GetByUserIDFn: func(context.Context, string) (*userDomain.User, error) {
			return &userDomain.User{UserID: testUserID}, nil
		},
	}}
	h := NewBonusHandler(uc.NewUsecase(passthroughUoW(repos), settingsmock.Production(), &notifymock.Sink{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/bonuses/withdraw", mustJSON(map[string]any{"currency": "naira"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Ax-User-Id", testUserID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.WithdrawBonus(c); err != nil {
		t.Fatalf("WithdrawBonus error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
