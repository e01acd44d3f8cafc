package mysql

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"vestra-backend/internal/domain/currency"
	walletDomain "vestra-backend/internal/domain/wallet"
	"vestra-backend/pkg/id"
)

func seedWallet(t *testing.T, repo *WalletRepository, userID string, naira float64) {
	t.Helper()
	w := &walletDomain.Wallet{
		WalletID:     id.NewID32(),
		UserID:       userID,
		NairaBalance: naira,
	}
	if err := repo.Create(context.Background(), w); err != nil {
		t.Fatalf("seed wallet: %v", err)
	}
}

func TestWallet_CreditAndDebit(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	seedWallet(t, repo, "u1", 1_000)

	if err := repo.Credit(ctx, "u1", currency.Naira, 250); err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if err := repo.Debit(ctx, "u1", currency.Naira, 750); err != nil {
		t.Fatalf("Debit: %v", err)
	}

	got, err := repo.GetByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.NairaBalance != 500 {
		t.Fatalf("balance: want 500, got %v", got.NairaBalance)
	}
}

func TestWallet_Debit_FailsClosed(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	seedWallet(t, repo, "u1", 100)

	err := repo.Debit(ctx, "u1", currency.Naira, 100.01)
	if !errors.Is(err, walletDomain.ErrInsufficientBalance) {
		t.Fatalf("want ErrInsufficientBalance, got %v", err)
	}

	got, _ := repo.GetByUserID(ctx, "u1")
	if got.NairaBalance != 100 {
		t.Fatalf("rejected debit must not mutate: %v", got.NairaBalance)
	}

	// the exact balance is spendable
	if err := repo.Debit(ctx, "u1", currency.Naira, 100); err != nil {
		t.Fatalf("exact debit: %v", err)
	}
	got, _ = repo.GetByUserID(ctx, "u1")
	if got.NairaBalance != 0 {
		t.Fatalf("balance after exact debit: %v", got.NairaBalance)
	}
}

func TestWallet_CreditEarnings_TracksTotal(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	seedWallet(t, repo, "u1", 0)

	if err := repo.CreditEarnings(ctx, "u1", currency.Naira, 500); err != nil {
		t.Fatalf("CreditEarnings: %v", err)
	}
	if err := repo.CreditEarnings(ctx, "u1", currency.Naira, 500); err != nil {
		t.Fatalf("CreditEarnings: %v", err)
	}

	got, _ := repo.GetByUserID(ctx, "u1")
	if got.NairaBalance != 1_000 || got.TotalEarnings != 1_000 {
		t.Fatalf("balance=%v totalEarnings=%v, want 1000/1000", got.NairaBalance, got.TotalEarnings)
	}
}

func TestWallet_CurrenciesAreIndependent(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	seedWallet(t, repo, "u1", 1_000)

	if err := repo.Credit(ctx, "u1", currency.USDT, 50); err != nil {
		t.Fatalf("usdt credit: %v", err)
	}
	if err := repo.Debit(ctx, "u1", currency.USDT, 60); !errors.Is(err, walletDomain.ErrInsufficientBalance) {
		t.Fatalf("naira funds must not cover a usdt debit, got %v", err)
	}

	got, _ := repo.GetByUserID(ctx, "u1")
	if got.NairaBalance != 1_000 || got.UsdtBalance != 50 {
		t.Fatalf("balances: naira=%v usdt=%v", got.NairaBalance, got.UsdtBalance)
	}
}

func TestWallet_LockAndUnlockBonus(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	seedWallet(t, repo, "u1", 0)

	if err := repo.LockBonus(ctx, "u1", currency.Naira, walletDomain.BonusWelcome, 1_000); err != nil {
		t.Fatalf("LockBonus welcome: %v", err)
	}
	if err := repo.LockBonus(ctx, "u1", currency.Naira, walletDomain.BonusReferral, 500); err != nil {
		t.Fatalf("LockBonus referral: %v", err)
	}

	got, _ := repo.GetByUserID(ctx, "u1")
	if got.LockedNairaWelcomeBonuses != 1_000 || got.LockedNairaReferralBonuses != 500 {
		t.Fatalf("sub-balances: welcome=%v referral=%v", got.LockedNairaWelcomeBonuses, got.LockedNairaReferralBonuses)
	}
	if got.LockedNairaBonuses != 1_500 {
		t.Fatalf("aggregate must equal sum of parts: %v", got.LockedNairaBonuses)
	}
	if got.TotalBonuses != 1_500 || got.TotalReferralEarnings != 500 {
		t.Fatalf("running totals: bonuses=%v referral=%v", got.TotalBonuses, got.TotalReferralEarnings)
	}
	if got.NairaBalance != 0 {
		t.Fatalf("locking must not touch the spendable balance: %v", got.NairaBalance)
	}

	if err := repo.UnlockBonus(ctx, "u1", currency.Naira, 1_000, 500); err != nil {
		t.Fatalf("UnlockBonus: %v", err)
	}
	got, _ = repo.GetByUserID(ctx, "u1")
	if got.NairaBalance != 1_500 {
		t.Fatalf("unlocked funds must land in the spendable balance: %v", got.NairaBalance)
	}
	if got.LockedNairaWelcomeBonuses != 0 || got.LockedNairaReferralBonuses != 0 || got.LockedNairaBonuses != 0 {
		t.Fatalf("locked buckets must be empty after a full unlock: %+v", got)
	}
}

func TestWallet_UnlockBonus_DuplicateFailsClosed(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	seedWallet(t, repo, "u1", 0)
	if err := repo.LockBonus(ctx, "u1", currency.Naira, walletDomain.BonusWelcome, 1_000); err != nil {
		t.Fatalf("LockBonus: %v", err)
	}
	if err := repo.UnlockBonus(ctx, "u1", currency.Naira, 1_000, 0); err != nil {
		t.Fatalf("first unlock: %v", err)
	}

	if err := repo.UnlockBonus(ctx, "u1", currency.Naira, 1_000, 0); !errors.Is(err, walletDomain.ErrNoLockedBonus) {
		t.Fatalf("second unlock must fail closed, got %v", err)
	}
	got, _ := repo.GetByUserID(ctx, "u1")
	if got.NairaBalance != 1_000 {
		t.Fatalf("duplicate unlock must not double-pay: %v", got.NairaBalance)
	}
}

// Random sequences of locks and a final full unlock must conserve value:
// spendable + locked never changes except by the amounts locked, and the
// aggregate always equals the sum of its parts.
func TestWallet_BonusConservation(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	seedWallet(t, repo, "u1", 0)
	rng := rand.New(rand.NewSource(42))

	var lockedWelcome, lockedReferral float64
	for i := 0; i < 20; i++ {
		amount := float64(rng.Intn(900)+100) / 4 // 25.00 .. 249.75
		source := walletDomain.BonusWelcome
		if rng.Intn(2) == 1 {
			source = walletDomain.BonusReferral
		}
		if err := repo.LockBonus(ctx, "u1", currency.Naira, source, amount); err != nil {
			t.Fatalf("LockBonus %d: %v", i, err)
		}
		if source == walletDomain.BonusWelcome {
			lockedWelcome += amount
		} else {
			lockedReferral += amount
		}

		got, _ := repo.GetByUserID(ctx, "u1")
		if diff := got.LockedNairaBonuses - (got.LockedNairaWelcomeBonuses + got.LockedNairaReferralBonuses); diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("aggregate drifted from parts after lock %d: %+v", i, got)
		}
	}

	if err := repo.UnlockBonus(ctx, "u1", currency.Naira, lockedWelcome, lockedReferral); err != nil {
		t.Fatalf("final unlock: %v", err)
	}
	got, _ := repo.GetByUserID(ctx, "u1")
	total := lockedWelcome + lockedReferral
	if diff := got.NairaBalance - total; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("value not conserved: spendable=%v locked-sum=%v", got.NairaBalance, total)
	}
	if got.LockedNairaBonuses > 1e-6 {
		t.Fatalf("locked aggregate must drain to zero: %v", got.LockedNairaBonuses)
	}
}

func TestWallet_Credit_UnknownUser(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	if err := repo.Credit(ctx, "nobody", currency.Naira, 10); !errors.Is(err, walletDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
