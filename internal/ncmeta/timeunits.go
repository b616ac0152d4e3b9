package ncmeta

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rtm0/cfmeta/internal/datelabel"
)

var errUnsupportedCalendar = errors.New("unsupported calendar")

// timeUnits is a parsed CF time unit such as "hours since 1900-01-01".
type timeUnits struct {
	step time.Duration
	ref  time.Time
}

var unitSteps = map[string]time.Duration{
	"second":  time.Second,
	"seconds": time.Second,
	"sec":     time.Second,
	"secs":    time.Second,
	"s":       time.Second,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"min":     time.Minute,
	"mins":    time.Minute,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"hr":      time.Hour,
	"hrs":     time.Hour,
	"h":       time.Hour,
	"day":     24 * time.Hour,
	"days":    24 * time.Hour,
	"d":       24 * time.Hour,
}

var refLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.0",
	"2006-01-02 15:04:05.000",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-1-2 15:4:5",
	"2006-1-2 15:4:5.0",
	"2006-1-2",
}

// parseTimeUnits parses "<unit> since <reference>". Only calendars that
// agree with Go's proleptic Gregorian time are accepted.
func parseTimeUnits(units, calendar string) (timeUnits, error) {
	switch strings.ToLower(calendar) {
	case "", "standard", "gregorian", "proleptic_gregorian":
	default:
		return timeUnits{}, fmt.Errorf("%w %q", errUnsupportedCalendar, calendar)
	}
	unit, ref, ok := strings.Cut(strings.TrimSpace(units), " since ")
	if !ok {
		return timeUnits{}, fmt.Errorf("time units %q have no reference date", units)
	}
	step, ok := unitSteps[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return timeUnits{}, fmt.Errorf("unsupported time unit %q", unit)
	}
	ref = strings.TrimSpace(ref)
	ref = strings.TrimSuffix(ref, " UTC")
	ref = strings.TrimSuffix(ref, " 0:00")
	ref = strings.TrimSuffix(ref, " 00:00")
	for _, layout := range refLayouts {
		if t, err := time.Parse(layout, ref); err == nil {
			return timeUnits{step: step, ref: t}, nil
		}
	}
	return timeUnits{}, fmt.Errorf("cannot parse reference date %q", ref)
}

// maxOffset bounds offsets from the reference date, in seconds.
const maxOffset = 1 << 53

// at converts a coordinate value to a time. The offset is kept in seconds:
// a time.Duration overflows after about 292 years.
func (u timeUnits) at(v float64) (time.Time, error) {
	secs := v * u.step.Seconds()
	if math.IsNaN(secs) || math.Abs(secs) > maxOffset {
		return time.Time{}, fmt.Errorf("time value %g is out of range", v)
	}
	whole := math.Floor(secs)
	nsec := int64(math.Round((secs - whole) * 1e9))
	if nsec == 1e9 {
		whole++
		nsec = 0
	}
	return time.Unix(u.ref.Unix()+int64(whole), nsec).UTC(), nil
}

// timeExtent derives the range and frequency of a time coordinate from its
// values. A coordinate without values is static.
func timeExtent(units, calendar string, values []float64) (datelabel.DateRange, datelabel.DateFrequency, error) {
	if len(values) == 0 {
		return datelabel.FXDateRange, datelabel.FXDateFrequency, nil
	}
	tu, err := parseTimeUnits(units, calendar)
	if err != nil {
		return datelabel.DateRange{}, datelabel.DateFrequency{}, err
	}
	start, err := tu.at(values[0])
	if err != nil {
		return datelabel.DateRange{}, datelabel.DateFrequency{}, err
	}
	end, err := tu.at(values[len(values)-1])
	if err != nil {
		return datelabel.DateRange{}, datelabel.DateFrequency{}, err
	}

	var freq datelabel.DateFrequency
	prec := datelabel.PrecisionMinute
	if len(values) > 1 {
		next, err := tu.at(values[1])
		if err != nil {
			return datelabel.DateRange{}, datelabel.DateFrequency{}, err
		}
		if f, err := datelabel.FrequencyFromStep(next.Sub(start)); err == nil {
			freq = f
			prec = f.Precision()
		}
	}
	r, err := datelabel.NewDateRange(datelabel.DateFromTime(start, prec), datelabel.DateFromTime(end, prec))
	if err != nil {
		return datelabel.DateRange{}, datelabel.DateFrequency{}, err
	}
	return r, freq, nil
}
