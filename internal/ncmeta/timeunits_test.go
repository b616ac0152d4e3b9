package ncmeta

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rtm0/cfmeta/internal/datelabel"
)

func TestParseTimeUnits(t *testing.T) {
	tests := []struct {
		units string
		step  time.Duration
		ref   time.Time
	}{
		{"hours since 1900-01-01 00:00:00.0", time.Hour, time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"days since 1850-1-1", 24 * time.Hour, time.Date(1850, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"seconds since 1970-01-01T00:00:00Z", time.Second, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"minutes since 2000-02-03 04:05", time.Minute, time.Date(2000, 2, 3, 4, 5, 0, 0, time.UTC)},
		{"Days since 2001-01-01 00:00:00 UTC", 24 * time.Hour, time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.units, func(t *testing.T) {
			got, err := parseTimeUnits(tt.units, "standard")
			if err != nil {
				t.Fatal(err)
			}
			if got.step != tt.step || !got.ref.Equal(tt.ref) {
				t.Errorf("parseTimeUnits() = %v, %v, want %v, %v", got.step, got.ref, tt.step, tt.ref)
			}
		})
	}
}

func TestParseTimeUnitsErrors(t *testing.T) {
	if _, err := parseTimeUnits("days since 1850-01-01", "360_day"); !errors.Is(err, errUnsupportedCalendar) {
		t.Errorf("360_day error = %v", err)
	}
	for _, units := range []string{"days", "fortnights since 2000-01-01", "days since yesterday", "months since 2000-01-01"} {
		if _, err := parseTimeUnits(units, "gregorian"); err == nil {
			t.Errorf("parseTimeUnits(%q) succeeded", units)
		}
	}
}

func TestTimeExtent(t *testing.T) {
	// ERA5 hourly data: hours since 1900-01-01.
	r, f, err := timeExtent("hours since 1900-01-01 00:00:00.0", "gregorian", []float64{1051896, 1051897, 1051898})
	if err != nil {
		t.Fatal(err)
	}
	want, _ := datelabel.ParseDateRange("2020010100-2020010102")
	if r != want {
		t.Errorf("range = %s, want %s", r, want)
	}
	if f != (datelabel.DateFrequency{Quantity: 1, Unit: datelabel.UnitHour}) {
		t.Errorf("frequency = %s", f)
	}
}

func TestTimeExtentEmptyIsStatic(t *testing.T) {
	r, f, err := timeExtent("", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsStatic() || !f.IsStatic() {
		t.Errorf("timeExtent(nil) = %s, %s, want fx", r, f)
	}
}

func TestTimeExtentSingleValue(t *testing.T) {
	r, f, err := timeExtent("days since 2000-01-01", "standard", []float64{0.5})
	if err != nil {
		t.Fatal(err)
	}
	if !f.IsZero() {
		t.Errorf("frequency = %s, want unset", f)
	}
	if r.Start != r.End || r.Start.Precision != datelabel.PrecisionMinute {
		t.Errorf("range = %+v", r)
	}
}

func TestTimeExtentDistantReference(t *testing.T) {
	tests := []struct {
		values []float64
		rng    string
		freq   datelabel.DateFrequency
	}{
		{[]float64{730120, 730485}, "2000-2001", datelabel.DateFrequency{Quantity: 1, Unit: datelabel.UnitYear}},
		{[]float64{730120, 730121, 730122}, "20000102-20000104", datelabel.DateFrequency{Quantity: 1, Unit: datelabel.UnitDay}},
	}
	for _, tt := range tests {
		t.Run(tt.rng, func(t *testing.T) {
			r, f, err := timeExtent("days since 0001-01-01", "standard", tt.values)
			if err != nil {
				t.Fatal(err)
			}
			want, err := datelabel.ParseDateRange(tt.rng)
			if err != nil {
				t.Fatal(err)
			}
			if r != want || f != tt.freq {
				t.Errorf("timeExtent() = %s, %s, want %s, %s", r, f, want, tt.freq)
			}
		})
	}
}

func TestTimeExtentOutOfRange(t *testing.T) {
	for _, v := range []float64{1e300, math.Inf(-1), math.NaN()} {
		if r, _, err := timeExtent("seconds since 1970-01-01", "standard", []float64{0, v}); err == nil {
			t.Errorf("timeExtent(%g) = %s, want error", v, r)
		}
	}
}
