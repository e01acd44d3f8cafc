package bonus

import (
	"errors"
	"fmt"
	"time"

	settingsDomain "vestra-backend/internal/domain/settings"
)

var ErrNotMatured = errors.New("bonus withdrawal period not reached")

type EligibilityDTO struct {
	Eligible      bool   `json:"eligible"`
	TimeRemaining string `json:"time_remaining,omitempty"`
}

type WithdrawBonusDTO struct {
	Success      bool    `json:"success"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	WelcomePart  float64 `json:"welcome_part"`
	ReferralPart float64 `json:"referral_part"`
}

// formatRemaining renders the remaining wait in the admin-configured unit,
// rounded up so the user is never told zero while still ineligible.
func formatRemaining(remaining time.Duration, unit settingsDomain.PeriodUnit) string {
	if remaining <= 0 {
		return ""
	}
	var per time.Duration
	var label string
	switch unit {
	case settingsDomain.UnitMinutes:
		per, label = time.Minute, "minute"
	case settingsDomain.UnitHours:
		per, label = time.Hour, "hour"
	default:
		per, label = 24*time.Hour, "day"
	}
	n := int64((remaining + per - 1) / per)
	if n == 1 {
		return fmt.Sprintf("1 %s", label)
	}
	return fmt.Sprintf("%d %ss", n, label)
}
