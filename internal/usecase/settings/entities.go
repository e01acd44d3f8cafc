package settings

import "errors"

var ErrBadPeriodUnit = errors.New("bonus withdrawal unit must be minutes, hours or days")
