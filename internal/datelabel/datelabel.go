// Package datelabel holds the date, date range and date frequency values
// attached to time coordinates. The values are plain comparable structs so
// that coordinates carrying them can be compared with ==.
package datelabel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidRange     = errors.New("invalid date range")
	ErrInvalidFrequency = errors.New("invalid date frequency")
)

// Precision is the finest calendar field a Date specifies.
type Precision int

const (
	PrecisionNone Precision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDay
	PrecisionHour
	PrecisionMinute

	// precisionFX marks the fixed/no-time sentinel; no parsed date has it.
	precisionFX Precision = -1
)

// Date is a calendar date truncated to a given precision. Fields finer than
// Precision are zero.
type Date struct {
	Year, Month, Day, Hour, Minute int
	Precision                      Precision
}

// digits per precision in the compact YYYYMMDDHHMM form.
var dateWidths = map[int]Precision{
	4:  PrecisionYear,
	6:  PrecisionMonth,
	8:  PrecisionDay,
	10: PrecisionHour,
	12: PrecisionMinute,
}

// ParseDate parses a date written as YYYY, YYYYMM, YYYYMMDD, YYYYMMDDHH or
// YYYYMMDDHHMM. Dashes, colons, spaces and a 'T' separator are ignored.
func ParseDate(s string) (Date, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case '-', ':', ' ', 'T':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
	prec, ok := dateWidths[len(compact)]
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	fields := []int{0, 1, 1, 0, 0}
	for i, w := range []int{4, 2, 2, 2, 2}[:prec] {
		offset := 0
		if i > 0 {
			offset = 4 + 2*(i-1)
		}
		n, err := strconv.Atoi(compact[offset : offset+w])
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		fields[i] = n
	}
	d := Date{Year: fields[0], Month: fields[1], Day: fields[2], Hour: fields[3], Minute: fields[4], Precision: prec}
	t := d.Time()
	if t.Year() != d.Year || int(t.Month()) != d.Month || t.Day() != d.Day ||
		t.Hour() != d.Hour || t.Minute() != d.Minute {
		return Date{}, fmt.Errorf("%w: %q out of range", ErrInvalidDate, s)
	}
	return d.truncate(), nil
}

// DateFromTime truncates t (in UTC) to the given precision.
func DateFromTime(t time.Time, p Precision) Date {
	t = t.UTC()
	d := Date{
		Year:      t.Year(),
		Month:     int(t.Month()),
		Day:       t.Day(),
		Hour:      t.Hour(),
		Minute:    t.Minute(),
		Precision: p,
	}
	return d.truncate()
}

func (d Date) truncate() Date {
	if d.Precision < PrecisionMonth {
		d.Month = 0
	}
	if d.Precision < PrecisionDay {
		d.Day = 0
	}
	if d.Precision < PrecisionHour {
		d.Hour = 0
	}
	if d.Precision < PrecisionMinute {
		d.Minute = 0
	}
	return d
}

// Time returns the earliest instant covered by d, in UTC.
func (d Date) Time() time.Time {
	month, day := d.Month, d.Day
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return time.Date(d.Year, time.Month(month), day, d.Hour, d.Minute, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d starts before o.
func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) String() string {
	switch d.Precision {
	case PrecisionYear:
		return fmt.Sprintf("%04d", d.Year)
	case PrecisionMonth:
		return fmt.Sprintf("%04d%02d", d.Year, d.Month)
	case PrecisionDay:
		return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
	case PrecisionHour:
		return fmt.Sprintf("%04d%02d%02d%02d", d.Year, d.Month, d.Day, d.Hour)
	case PrecisionMinute:
		return fmt.Sprintf("%04d%02d%02d%02d%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute)
	}
	return ""
}

// DateRange is a closed interval of dates. The zero value means no range
// has been set; FXDateRange marks time-independent data.
type DateRange struct {
	Start, End Date
}

// FXDateRange is the placeholder range of static ("fx") data.
var FXDateRange = DateRange{
	Start: Date{Precision: precisionFX},
	End:   Date{Precision: precisionFX},
}

// NewDateRange returns the range [start, end].
func NewDateRange(start, end Date) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, fmt.Errorf("%w: empty endpoint", ErrInvalidRange)
	}
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: %s precedes %s", ErrInvalidRange, end, start)
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange parses "START-END" (compact dates) or "fx".
func ParseDateRange(s string) (DateRange, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "fx") {
		return FXDateRange, nil
	}
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	d0, err := ParseDate(start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	d1, err := ParseDate(end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return NewDateRange(d0, d1)
}

// IsZero reports whether no range has been set.
func (r DateRange) IsZero() bool {
	return r == DateRange{}
}

// IsStatic reports whether r is the fixed/no-time sentinel.
func (r DateRange) IsStatic() bool {
	return r == FXDateRange
}

func (r DateRange) String() string {
	switch {
	case r.IsStatic():
		return "fx"
	case r.IsZero():
		return ""
	}
	return r.Start.String() + "-" + r.End.String()
}
