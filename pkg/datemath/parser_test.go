package datemath_test

import (
	"testing"
	"time"

	"school-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Kolkata")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Unknown fallback",
			relative: "some random day",
			want:     startOfBase, // falls back to startOfDay(base)
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestParseRange(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	eod := func(t time.Time) time.Time { return parser.EndOfDay(t) }

	tests := []struct {
		name      string
		relative  string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{name: "Yesterday", relative: "yesterday", wantStart: day(2024, 4, 30), wantEnd: eod(day(2024, 4, 30))},
		{name: "Today", relative: "Today", wantStart: day(2024, 5, 1), wantEnd: eod(day(2024, 5, 1))},
		{name: "This week", relative: "this week", wantStart: day(2024, 4, 29), wantEnd: eod(day(2024, 5, 5))},
		{name: "Next week", relative: "next week", wantStart: day(2024, 5, 6), wantEnd: eod(day(2024, 5, 12))},
		{name: "Past week", relative: "past week", wantStart: day(2024, 4, 25), wantEnd: eod(day(2024, 5, 1))},
		{name: "Last week is seven days", relative: "last week", wantStart: day(2024, 4, 25), wantEnd: eod(day(2024, 5, 1))},
		{name: "In days", relative: "in 3 days", wantStart: day(2024, 5, 4), wantEnd: eod(day(2024, 5, 4))},
		{name: "In weeks", relative: "in 2 weeks", wantStart: day(2024, 5, 15), wantEnd: eod(day(2024, 5, 15))},
		{name: "Next weekday", relative: "next friday", wantStart: day(2024, 5, 3), wantEnd: eod(day(2024, 5, 3))},
		{name: "Next same weekday", relative: "next wednesday", wantStart: day(2024, 5, 8), wantEnd: eod(day(2024, 5, 8))},
		{name: "Next unknown", relative: "next term", wantErr: true},
		{name: "Unknown", relative: "someday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := parser.ParseRange(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("ParseRange() = [%v, %v], want [%v, %v]", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestWeek_Sunday(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	sunday := time.Date(2024, 5, 5, 10, 0, 0, 0, time.UTC)
	start, end := parser.Week(sunday)
	if !start.Equal(time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Week() start = %v", start)
	}
	if !end.Equal(time.Date(2024, 5, 5, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("Week() end = %v", end)
	}
}

func TestDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	if _, _, ok := parser.Date(2024, time.February, 30); ok {
		t.Error("expected 30 February to be rejected")
	}
	start, end, ok := parser.Date(2024, time.October, 22)
	if !ok {
		t.Fatal("expected 22 October to be valid")
	}
	if start.Hour() != 0 || end.Hour() != 23 || end.Second() != 59 {
		t.Errorf("Date() = [%v, %v], want full day", start, end)
	}
}
