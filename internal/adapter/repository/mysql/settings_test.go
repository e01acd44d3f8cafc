package mysql

import (
	"context"
	"testing"

	settingsDomain "vestra-backend/internal/domain/settings"
)

func TestSettings_Get_SeedsDefaultsOnFirstUse(t *testing.T) {
	db := openTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get (empty table): %v", err)
	}
	if got.MinWithdrawal != 1_000 || got.BonusWithdrawalPeriod != 15 || got.BonusWithdrawalUnit != settingsDomain.UnitDays {
		t.Fatalf("defaults wrong: %+v", got)
	}
	if !got.ROIOnlyWithdrawal {
		t.Fatalf("ROI-only policy must default on")
	}

	// second read returns the seeded row, not another insert
	again, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get (seeded): %v", err)
	}
	if again.ID != got.ID {
		t.Fatalf("a second row was inserted: %d vs %d", again.ID, got.ID)
	}
}

func TestSettings_SaveRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	row, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	row.TestingMode = true
	row.BonusWithdrawalPeriod = 90
	row.BonusWithdrawalUnit = settingsDomain.UnitMinutes
	if err := repo.Save(ctx, row); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get after save: %v", err)
	}
	if !got.TestingMode || got.BonusWithdrawalPeriod != 90 || got.BonusWithdrawalUnit != settingsDomain.UnitMinutes {
		t.Fatalf("update not persisted: %+v", got)
	}
}
