package govukholidays

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// The assertions here are backend-agnostic on purpose: the same file
// exercises the time.Time backend by default and the civil.Date backend
// under -tags civildate, which is what guarantees identical query
// semantics across the two.

func TestNewDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		{"christmas", 2025, time.December, 25, false},
		{"leap day", 2024, time.February, 29, false},
		{"non-leap feb 29", 2025, time.February, 29, true},
		{"feb 30", 2024, time.February, 30, true},
		{"day zero", 2024, time.January, 0, true},
		{"month 13", 2024, time.Month(13), 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := NewDate(tt.year, tt.month, tt.day)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewDate(%d, %v, %d) succeeded, want error", tt.year, tt.month, tt.day)
				}
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("error %v does not wrap ErrInvalidDate", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDate(%d, %v, %d) failed: %v", tt.year, tt.month, tt.day, err)
			}
			if date.Year() != tt.year || date.Month() != tt.month || date.Day() != tt.day {
				t.Errorf("got %d-%v-%d, want %d-%v-%d",
					date.Year(), date.Month(), date.Day(), tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-12-25", want: "2025-12-25"},
		{in: "2024-02-29", want: "2024-02-29"},
		{in: "2025-02-29", wantErr: true},
		{in: "2025-13-01", wantErr: true},
		{in: "25/12/2025", wantErr: true},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			date, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) succeeded, want error", tt.in)
				}
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("error %v does not wrap ErrInvalidDate", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tt.in, err)
			}
			if got := date.String(); got != tt.want {
				t.Errorf("ParseDate(%q).String() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateNextPrevious(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date Date
		next string
	}{
		{"mid-month", d(2025, time.June, 10), "2025-06-11"},
		{"month boundary", d(2025, time.June, 30), "2025-07-01"},
		{"year boundary", d(2025, time.December, 31), "2026-01-01"},
		{"leap february", d(2024, time.February, 28), "2024-02-29"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := tt.date.Next()
			if got := next.String(); got != tt.next {
				t.Errorf("%s.Next() = %s, want %s", tt.date, got, tt.next)
			}
			if got := next.Previous(); !got.Equal(tt.date) {
				t.Errorf("%s.Next().Previous() = %s, want %s", tt.date, got, tt.date)
			}
		})
	}
}

func TestDateOrdering(t *testing.T) {
	t.Parallel()

	early := d(2025, time.January, 1)
	late := d(2025, time.July, 12)

	if !early.Before(late) || late.Before(early) {
		t.Error("Before is inconsistent")
	}
	if !late.After(early) || early.After(late) {
		t.Error("After is inconsistent")
	}
	if !early.Equal(early) || early.Equal(late) {
		t.Error("Equal is inconsistent")
	}
	if early.Compare(late) != -1 || late.Compare(early) != 1 || early.Compare(early) != 0 {
		t.Error("Compare is inconsistent")
	}
}

func TestDateWeekday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date Date
		want time.Weekday
	}{
		{d(2025, time.December, 25), time.Thursday},
		{d(2026, time.December, 26), time.Saturday},
		{d(2026, time.December, 28), time.Monday},
		{d(2025, time.July, 12), time.Saturday},
	}
	for _, tt := range tests {
		if got := tt.date.Weekday(); got != tt.want {
			t.Errorf("%s.Weekday() = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestDateOf(t *testing.T) {
	t.Parallel()

	moment := time.Date(2025, time.December, 25, 23, 59, 59, 0, time.FixedZone("CET", 60*60))
	if got := DateOf(moment); got.String() != "2025-12-25" {
		t.Errorf("DateOf truncated to %s, want 2025-12-25", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	t.Parallel()

	want := d(2025, time.December, 25)
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"2025-12-25"` {
		t.Errorf("marshalled to %s, want %q", data, `"2025-12-25"`)
	}

	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("round trip gave %s, want %s", got, want)
	}

	if err := json.Unmarshal([]byte(`"2025-02-30"`), &got); err == nil {
		t.Error("unmarshalling an invalid date succeeded, want error")
	}
}

func TestDateIsZero(t *testing.T) {
	t.Parallel()

	if !(Date{}).IsZero() {
		t.Error("zero Date is not IsZero")
	}
	if d(2025, time.January, 1).IsZero() {
		t.Error("real date reports IsZero")
	}
}
