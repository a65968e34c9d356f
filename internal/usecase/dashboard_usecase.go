package usecase

import (
	"errors"
	"fmt"
	"time"

	"context"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidPeriod = errors.New("invalid period, use daily, weekly or monthly")

type DashboardUsecase interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	ChartData(ctx context.Context, period string) (*dto.ChartDataResponse, error)
	Calendar(ctx context.Context, month, year int) (*dto.CalendarResponse, error)
}

type dashboardUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
	}
}

func (u *dashboardUsecase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	now := time.Now()

	totalPatients, err := u.patientRepo.Count(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	professionals, err := u.professionalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list professionals: %+v", err)
		return nil, err
	}

	today, err := u.appointmentRepo.CountByDate(u.db.WithContext(ctx), now)
	if err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}

	weekStart := startOfWeek(now)
	week, err := u.appointmentRepo.CountBetween(u.db.WithContext(ctx), weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		u.log.Warnf("Failed to count this week's appointments: %+v", err)
		return nil, err
	}

	next, err := u.appointmentRepo.FindNextFrom(u.db.WithContext(ctx), now, now.Format("15:04"))
	if err != nil {
		u.log.Warnf("Failed to find next appointment: %+v", err)
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalPatients:      totalPatients,
		TotalProfessionals: len(professionals),
		AppointmentsToday:  today,
		AppointmentsWeek:   week,
		NextAppointment:    converter.AppointmentToResponse(next),
	}, nil
}

func (u *dashboardUsecase) ChartData(ctx context.Context, period string) (*dto.ChartDataResponse, error) {
	now := time.Now()

	start, end, err := chartRange(period, now)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindBetween(u.db.WithContext(ctx), start, end)
	if err != nil {
		u.log.Warnf("Failed to load appointments for chart: %+v", err)
		return nil, err
	}

	return &dto.ChartDataResponse{
		Period: period,
		Points: groupChartPoints(period, appointments, start, now),
	}, nil
}

func (u *dashboardUsecase) Calendar(ctx context.Context, month, year int) (*dto.CalendarResponse, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	appointments, err := u.appointmentRepo.FindBetween(u.db.WithContext(ctx), first, last)
	if err != nil {
		u.log.Warnf("Failed to load appointments for calendar: %+v", err)
		return nil, err
	}

	return &dto.CalendarResponse{
		Month: month,
		Year:  year,
		Days:  groupCalendarDays(appointments, last.Day()),
	}, nil
}

// startOfWeek returns the Monday of t's week, at midnight.
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(weekday - 1))
}

// chartRange resolves the period keyword into a scan range ending today:
// daily = last 7 days, weekly = last 4 whole weeks, monthly = last 6 months.
func chartRange(period string, now time.Time) (time.Time, time.Time, error) {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case "daily":
		return end.AddDate(0, 0, -6), end, nil
	case "weekly":
		return startOfWeek(now).AddDate(0, 0, -21), end, nil
	case "monthly":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
}

func groupChartPoints(period string, appointments []entity.Appointment, start, now time.Time) []dto.ChartPoint {
	switch period {
	case "daily":
		return groupDaily(appointments, start)
	case "weekly":
		return groupWeekly(appointments, start)
	default:
		return groupMonthly(appointments, start)
	}
}

func groupDaily(appointments []entity.Appointment, start time.Time) []dto.ChartPoint {
	points := make([]dto.ChartPoint, 7)
	for i := range points {
		day := start.AddDate(0, 0, i)
		points[i].Label = day.Format("02/01")
		for _, a := range appointments {
			if sameDay(a.Date, day) {
				points[i].Count++
			}
		}
	}
	return points
}

func groupWeekly(appointments []entity.Appointment, start time.Time) []dto.ChartPoint {
	points := make([]dto.ChartPoint, 4)
	for i := range points {
		weekStart := start.AddDate(0, 0, i*7)
		weekEnd := weekStart.AddDate(0, 0, 7)
		points[i].Label = fmt.Sprintf("Semana %s", weekStart.Format("02/01"))
		for _, a := range appointments {
			if !a.Date.Before(weekStart) && a.Date.Before(weekEnd) {
				points[i].Count++
			}
		}
	}
	return points
}

func groupMonthly(appointments []entity.Appointment, start time.Time) []dto.ChartPoint {
	points := make([]dto.ChartPoint, 6)
	for i := range points {
		month := start.AddDate(0, i, 0)
		points[i].Label = month.Format("01/2006")
		for _, a := range appointments {
			if a.Date.Year() == month.Year() && a.Date.Month() == month.Month() {
				points[i].Count++
			}
		}
	}
	return points
}

// groupCalendarDays builds the month grid: one entry per day that has
// appointments, in day order.
func groupCalendarDays(appointments []entity.Appointment, daysInMonth int) []dto.CalendarDay {
	byDay := make(map[int][]entity.Appointment)
	for _, a := range appointments {
		byDay[a.Date.Day()] = append(byDay[a.Date.Day()], a)
	}

	var days []dto.CalendarDay
	for day := 1; day <= daysInMonth; day++ {
		if appts, ok := byDay[day]; ok {
			days = append(days, dto.CalendarDay{
				Day:          day,
				Appointments: converter.AppointmentsToResponses(appts),
			})
		}
	}
	return days
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
