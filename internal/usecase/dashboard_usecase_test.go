package usecase

import (
	"testing"
	"time"

	"clinic-backend/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday", time.Date(2025, 3, 12, 15, 30, 0, 0, time.Local), date(2025, 3, 10)},
		{"monday", time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), date(2025, 3, 10)},
		{"sunday rolls back to previous monday", time.Date(2025, 3, 16, 23, 59, 0, 0, time.Local), date(2025, 3, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := startOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("startOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestChartRange(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local) // a Wednesday

	start, end, err := chartRange("daily", now)
	if err != nil {
		t.Fatalf("daily: unexpected error: %v", err)
	}
	if !start.Equal(date(2025, 3, 6)) || !end.Equal(date(2025, 3, 12)) {
		t.Errorf("daily range = [%v, %v], want [2025-03-06, 2025-03-12]", start, end)
	}

	start, _, err = chartRange("weekly", now)
	if err != nil {
		t.Fatalf("weekly: unexpected error: %v", err)
	}
	// 3 weeks before the Monday of the current week
	if !start.Equal(date(2025, 2, 17)) {
		t.Errorf("weekly start = %v, want 2025-02-17", start)
	}

	start, _, err = chartRange("monthly", now)
	if err != nil {
		t.Fatalf("monthly: unexpected error: %v", err)
	}
	if !start.Equal(date(2024, 10, 1)) {
		t.Errorf("monthly start = %v, want 2024-10-01", start)
	}

	if _, _, err := chartRange("yearly", now); err != ErrInvalidPeriod {
		t.Errorf("expected ErrInvalidPeriod for unknown period, got %v", err)
	}
}

func TestGroupDaily(t *testing.T) {
	start := date(2025, 3, 6)
	appointments := []entity.Appointment{
		{Date: date(2025, 3, 6)},
		{Date: date(2025, 3, 6)},
		{Date: date(2025, 3, 12)},
		{Date: date(2025, 3, 5)}, // before the range, ignored
	}

	points := groupDaily(appointments, start)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	if points[0].Label != "06/03" {
		t.Errorf("first label = %q, want %q", points[0].Label, "06/03")
	}
	if points[0].Count != 2 {
		t.Errorf("count for 06/03 = %d, want 2", points[0].Count)
	}
	if points[6].Label != "12/03" || points[6].Count != 1 {
		t.Errorf("last point = %+v, want label 12/03 count 1", points[6])
	}
	for i := 1; i < 6; i++ {
		if points[i].Count != 0 {
			t.Errorf("point %d count = %d, want 0", i, points[i].Count)
		}
	}
}

func TestGroupWeekly(t *testing.T) {
	start := date(2025, 2, 17) // a Monday
	appointments := []entity.Appointment{
		{Date: date(2025, 2, 17)}, // first week, inclusive start
		{Date: date(2025, 2, 23)}, // first week, last day
		{Date: date(2025, 2, 24)}, // second week
		{Date: date(2025, 3, 16)}, // fourth week
	}

	points := groupWeekly(appointments, start)
	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}
	if points[0].Label != "Semana 17/02" {
		t.Errorf("first label = %q, want %q", points[0].Label, "Semana 17/02")
	}
	wantCounts := []int{2, 1, 0, 1}
	for i, want := range wantCounts {
		if points[i].Count != want {
			t.Errorf("week %d count = %d, want %d", i, points[i].Count, want)
		}
	}
}

func TestGroupMonthly(t *testing.T) {
	start := date(2024, 10, 1)
	appointments := []entity.Appointment{
		{Date: date(2024, 10, 15)},
		{Date: date(2024, 10, 31)},
		{Date: date(2025, 3, 1)},
		{Date: date(2024, 9, 30)}, // before the range, ignored
	}

	points := groupMonthly(appointments, start)
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	if points[0].Label != "10/2024" || points[0].Count != 2 {
		t.Errorf("first point = %+v, want label 10/2024 count 2", points[0])
	}
	if points[5].Label != "03/2025" || points[5].Count != 1 {
		t.Errorf("last point = %+v, want label 03/2025 count 1", points[5])
	}
}

func TestGroupCalendarDays(t *testing.T) {
	appointments := []entity.Appointment{
		{ID: 1, Date: date(2025, 3, 5)},
		{ID: 2, Date: date(2025, 3, 5)},
		{ID: 3, Date: date(2025, 3, 20)},
	}

	days := groupCalendarDays(appointments, 31)
	if len(days) != 2 {
		t.Fatalf("expected 2 days with appointments, got %d", len(days))
	}
	if days[0].Day != 5 || len(days[0].Appointments) != 2 {
		t.Errorf("day 5 = %+v, want 2 appointments", days[0])
	}
	if days[1].Day != 20 || len(days[1].Appointments) != 1 {
		t.Errorf("day 20 = %+v, want 1 appointment", days[1])
	}
}

func TestGroupCalendarDaysEmpty(t *testing.T) {
	if days := groupCalendarDays(nil, 30); len(days) != 0 {
		t.Errorf("expected no days for empty month, got %d", len(days))
	}
}
