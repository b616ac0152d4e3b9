package datelabel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit is the calendar unit of a DateFrequency.
type Unit string

const (
	UnitFX     Unit = "fx"
	UnitMinute Unit = "min"
	UnitHour   Unit = "hr"
	UnitDay    Unit = "day"
	UnitWeek   Unit = "wk"
	UnitMonth  Unit = "mon"
	UnitYear   Unit = "yr"
)

var unitAliases = map[string]Unit{
	"fx":       UnitFX,
	"static":   UnitFX,
	"min":      UnitMinute,
	"mi":       UnitMinute,
	"minute":   UnitMinute,
	"hr":       UnitHour,
	"h":        UnitHour,
	"hour":     UnitHour,
	"hourly":   UnitHour,
	"day":      UnitDay,
	"d":        UnitDay,
	"daily":    UnitDay,
	"wk":       UnitWeek,
	"week":     UnitWeek,
	"weekly":   UnitWeek,
	"mon":      UnitMonth,
	"mo":       UnitMonth,
	"month":    UnitMonth,
	"monthly":  UnitMonth,
	"yr":       UnitYear,
	"y":        UnitYear,
	"year":     UnitYear,
	"annual":   UnitYear,
	"yearly":   UnitYear,
	"decadal":  UnitYear,
	"seasonal": UnitMonth,
}

// multiplier applied to the quantity for aliases that imply one.
var unitScale = map[string]int{
	"decadal":  10,
	"seasonal": 3,
}

// DateFrequency is the sampling interval of a time coordinate. The zero
// value means no frequency has been set.
type DateFrequency struct {
	Quantity int
	Unit     Unit
}

// FXDateFrequency is the frequency of static data.
var FXDateFrequency = DateFrequency{Unit: UnitFX}

var frequencyRE = regexp.MustCompile(`^(\d*)\s*([a-z]+)$`)

// ParseFrequency parses strings such as "6hr", "day", "mon", "1yr" or "fx".
func ParseFrequency(s string) (DateFrequency, error) {
	m := frequencyRE.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return DateFrequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
	unit, ok := unitAliases[m[2]]
	if !ok {
		return DateFrequency{}, fmt.Errorf("%w: unknown unit in %q", ErrInvalidFrequency, s)
	}
	if unit == UnitFX {
		if m[1] != "" {
			return DateFrequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
		}
		return FXDateFrequency, nil
	}
	q := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return DateFrequency{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
		}
		q = n
	}
	if scale, ok := unitScale[m[2]]; ok {
		q *= scale
	}
	return DateFrequency{Quantity: q, Unit: unit}, nil
}

// FrequencyFromStep infers the frequency of a series sampled every step.
// Steps of 28 to 31 days are taken as monthly and 365 or 366 days as yearly.
func FrequencyFromStep(step time.Duration) (DateFrequency, error) {
	const day = 24 * time.Hour
	switch {
	case step <= 0:
		return DateFrequency{}, fmt.Errorf("%w: non-positive step %s", ErrInvalidFrequency, step)
	case step%day == 0:
		days := int(step / day)
		switch {
		case days == 7:
			return DateFrequency{Quantity: 1, Unit: UnitWeek}, nil
		case days >= 28 && days <= 31:
			return DateFrequency{Quantity: 1, Unit: UnitMonth}, nil
		case days == 365 || days == 366:
			return DateFrequency{Quantity: 1, Unit: UnitYear}, nil
		}
		return DateFrequency{Quantity: days, Unit: UnitDay}, nil
	case step%time.Hour == 0:
		return DateFrequency{Quantity: int(step / time.Hour), Unit: UnitHour}, nil
	case step%time.Minute == 0:
		return DateFrequency{Quantity: int(step / time.Minute), Unit: UnitMinute}, nil
	}
	return DateFrequency{}, fmt.Errorf("%w: step %s is not a whole number of minutes", ErrInvalidFrequency, step)
}

// IsZero reports whether no frequency has been set.
func (f DateFrequency) IsZero() bool {
	return f == DateFrequency{}
}

// IsStatic reports whether f is the frequency of static data.
func (f DateFrequency) IsStatic() bool {
	return f == FXDateFrequency
}

// Precision returns the date precision needed to label samples at f.
func (f DateFrequency) Precision() Precision {
	switch f.Unit {
	case UnitMinute:
		return PrecisionMinute
	case UnitHour:
		return PrecisionHour
	case UnitDay, UnitWeek:
		return PrecisionDay
	case UnitMonth:
		return PrecisionMonth
	case UnitYear:
		return PrecisionYear
	}
	return PrecisionNone
}

func (f DateFrequency) String() string {
	switch {
	case f.IsZero():
		return ""
	case f.IsStatic():
		return string(UnitFX)
	case f.Quantity == 1 && f.Unit != UnitHour && f.Unit != UnitMinute:
		return string(f.Unit)
	}
	return strconv.Itoa(f.Quantity) + string(f.Unit)
}
