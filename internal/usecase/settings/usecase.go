package settings

import (
	"context"
	"encoding/json"
	"log"
	"time"

	settingsDomain "vestra-backend/internal/domain/settings"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "platform:settings"

// Usecase backs both the admin settings endpoints and the Provider
// snapshot consumed by the core components. A short redis cache keeps the
// per-operation snapshot reads off the database; rdb may be nil (tests,
// degraded mode) in which case every snapshot hits the repository.
type Usecase struct {
	repo settingsDomain.Repository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewUsecase(repo settingsDomain.Repository, rdb *redis.Client, ttl time.Duration) *Usecase {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Usecase{repo: repo, rdb: rdb, ttl: ttl}
}

func (u *Usecase) Snapshot(ctx context.Context) (settingsDomain.Snapshot, error) {
	if u.rdb != nil {
		if raw, err := u.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var row settingsDomain.Settings
			if jerr := json.Unmarshal(raw, &row); jerr == nil {
				return row.View(), nil
			}
		}
	}
	row, err := u.repo.Get(ctx)
	if err != nil {
		return settingsDomain.Snapshot{}, err
	}
	u.cache(ctx, row)
	return row.View(), nil
}

func (u *Usecase) Get(ctx context.Context) (*settingsDomain.Settings, error) {
	return u.repo.Get(ctx)
}

// UpdateInput uses pointers so admins can patch a subset of fields.
type UpdateInput struct {
	MinWithdrawal     *float64 `json:"min_withdrawal"`
	MaxWithdrawal     *float64 `json:"max_withdrawal"`
	WithdrawalFeePct  *float64 `json:"withdrawal_fee_pct"`
	ProcessingHours   *int     `json:"processing_hours"`
	AutoPayout        *bool    `json:"auto_payout"`
	ROIOnlyWithdrawal *bool    `json:"roi_only_withdrawal"`

	BonusWithdrawalPeriod *int    `json:"bonus_withdrawal_period"`
	BonusWithdrawalUnit   *string `json:"bonus_withdrawal_unit"`

	UsdtWithdrawalEnabled *bool `json:"usdt_withdrawal_enabled"`
	UsdtInvestmentEnabled *bool `json:"usdt_investment_enabled"`
	TestingMode           *bool `json:"testing_mode"`
}

func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*settingsDomain.Settings, error) {
	row, err := u.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if in.MinWithdrawal != nil {
		row.MinWithdrawal = *in.MinWithdrawal
	}
	if in.MaxWithdrawal != nil {
		row.MaxWithdrawal = *in.MaxWithdrawal
	}
	if in.WithdrawalFeePct != nil {
		row.WithdrawalFeePct = *in.WithdrawalFeePct
	}
	if in.ProcessingHours != nil {
		row.ProcessingHours = *in.ProcessingHours
	}
	if in.AutoPayout != nil {
		row.AutoPayout = *in.AutoPayout
	}
	if in.ROIOnlyWithdrawal != nil {
		row.ROIOnlyWithdrawal = *in.ROIOnlyWithdrawal
	}
	if in.BonusWithdrawalPeriod != nil {
		row.BonusWithdrawalPeriod = *in.BonusWithdrawalPeriod
	}
	if in.BonusWithdrawalUnit != nil {
		switch settingsDomain.PeriodUnit(*in.BonusWithdrawalUnit) {
		case settingsDomain.UnitMinutes, settingsDomain.UnitHours, settingsDomain.UnitDays:
			row.BonusWithdrawalUnit = settingsDomain.PeriodUnit(*in.BonusWithdrawalUnit)
		default:
			return nil, ErrBadPeriodUnit
		}
	}
	if in.UsdtWithdrawalEnabled != nil {
		row.UsdtWithdrawalEnabled = *in.UsdtWithdrawalEnabled
	}
	if in.UsdtInvestmentEnabled != nil {
		row.UsdtInvestmentEnabled = *in.UsdtInvestmentEnabled
	}
	if in.TestingMode != nil {
		row.TestingMode = *in.TestingMode
	}
	if err := u.repo.Save(ctx, row); err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	u.cache(ctx, row)
	return row, nil
}

func (u *Usecase) cache(ctx context.Context, row *settingsDomain.Settings) {
	if u.rdb == nil {
		return
	}
	payload, err := json.Marshal(row)
	if err != nil {
		return
	}
	if err := u.rdb.Set(ctx, cacheKey, payload, u.ttl).Err(); err != nil {
		log.Printf("settings: cache write failed: %v", err)
	}
}

func (u *Usecase) invalidate(ctx context.Context) {
	if u.rdb == nil {
		return
	}
	if err := u.rdb.Del(ctx, cacheKey).Err(); err != nil {
		log.Printf("settings: cache invalidate failed: %v", err)
	}
}
