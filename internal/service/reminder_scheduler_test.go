package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"clinic-backend/config"
	"clinic-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeStore struct {
	appointments  []entity.Appointment
	patients      map[int]*entity.Patient
	professionals map[int]*entity.Professional

	findErr    error
	markErr    error
	panicFirst bool

	scans     atomic.Int32
	markCalls [][]int
}

func (s *fakeStore) FindPendingReminders(_ context.Context, day time.Time) ([]entity.Appointment, error) {
	s.scans.Add(1)
	if s.panicFirst {
		s.panicFirst = false
		panic("scan exploded")
	}
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []entity.Appointment
	for _, a := range s.appointments {
		if a.AlarmSent || a.IsCancelled() {
			continue
		}
		if a.Date.Format("2006-01-02") != day.Format("2006-01-02") {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeStore) FindPatient(_ context.Context, id int) (*entity.Patient, error) {
	return s.patients[id], nil
}

func (s *fakeStore) FindProfessional(_ context.Context, id int) (*entity.Professional, error) {
	return s.professionals[id], nil
}

func (s *fakeStore) MarkAlarmSent(_ context.Context, ids []int) error {
	if s.markErr != nil {
		return s.markErr
	}
	if len(ids) > 0 {
		s.markCalls = append(s.markCalls, ids)
	}
	for _, id := range ids {
		for i := range s.appointments {
			if s.appointments[i].ID == id {
				s.appointments[i].AlarmSent = true
			}
		}
	}
	return nil
}

func (s *fakeStore) alarmSent(id int) bool {
	for _, a := range s.appointments {
		if a.ID == id {
			return a.AlarmSent
		}
	}
	return false
}

type gatewayCall struct {
	email, name, patient, dateStr, timeStr string
}

type fakeGateway struct {
	calls   []gatewayCall
	failAll bool
}

func (g *fakeGateway) SendAppointmentReminder(email, name, patient, dateStr, timeStr string) bool {
	g.calls = append(g.calls, gatewayCall{email, name, patient, dateStr, timeStr})
	return !g.failAll
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestScheduler(store *fakeStore, gateway *fakeGateway, now time.Time) *ReminderScheduler {
	s := NewReminderScheduler(store, gateway, nil, testLogger(), config.SchedulerConfig{
		Interval:  time.Minute,
		Lookahead: 30 * time.Minute,
	})
	s.clock = &fakeClock{now: now}
	return s
}

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
}

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.Local)
}

func TestRunCycle_SendsOnceWithinWindow(t *testing.T) {
	store := &fakeStore{
		appointments: []entity.Appointment{
			{ID: 1, PatientID: 10, ProfessionalID: 20, Date: day(t), Time: "14:00", Status: entity.AppointmentStatusConfirmed},
		},
		patients:      map[int]*entity.Patient{10: {ID: 10, Name: "Maria Silva"}},
		professionals: map[int]*entity.Professional{20: {ID: 20, Name: "Dra. Ana", Email: "ana@clinica.com"}},
	}
	gateway := &fakeGateway{}
	s := newTestScheduler(store, gateway, at(t, 13, 45))

	stats, err := s.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if stats.Sent != 1 || stats.Skipped != 0 || stats.Failed != 0 {
		t.Errorf("stats: got %+v, want sent=1", stats)
	}
	if len(gateway.calls) != 1 {
		t.Fatalf("gateway calls: got %d, want 1", len(gateway.calls))
	}
	call := gateway.calls[0]
	if call.email != "ana@clinica.com" || call.patient != "Maria Silva" {
		t.Errorf("call: got %+v", call)
	}
	if call.dateStr != "10/03/2025" || call.timeStr != "14:00" {
		t.Errorf("call formatting: got date=%q time=%q", call.dateStr, call.timeStr)
	}
	if !store.alarmSent(1) {
		t.Error("alarm_sent not set after successful delivery")
	}

	// One minute later: the marker suppresses any further attempt.
	s.clock = &fakeClock{now: at(t, 13, 46)}
	if _, err := s.RunCycle(context.Background()); err != nil {
		t.Fatalf("second RunCycle: %v", err)
	}
	if len(gateway.calls) != 1 {
		t.Errorf("gateway called again after marker set: %d calls", len(gateway.calls))
	}
}

func TestWithinWindow_Boundaries(t *testing.T) {
	now := at(t, 13, 0)
	lookahead := 30 * time.Minute

	cases := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{"29 minutes ahead", now.Add(29 * time.Minute), true},
		{"exactly at lookahead", now.Add(30 * time.Minute), true},
		{"31 minutes ahead", now.Add(31 * time.Minute), false},
		{"exactly now", now, true},
		{"one minute past", now.Add(-time.Minute), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := withinWindow(now, tc.instant, lookahead); got != tc.want {
				t.Errorf("withinWindow(%s): got %v, want %v", tc.instant, got, tc.want)
			}
		})
	}
}

func TestRunCycle_CancelledSuppressed(t *testing.T) {
	store := &fakeStore{
		appointments: []entity.Appointment{
			{ID: 1, PatientID: 10, ProfessionalID: 20, Date: day(t), Time: "14:00", Status: entity.AppointmentStatusCancelled},
		},
		patients:      map[int]*entity.Patient{10: {ID: 10, Name: "Maria"}},
		professionals: map[int]*entity.Professional{20: {ID: 20, Name: "Dra. Ana", Email: "ana@clinica.com"}},
	}
	gateway := &fakeGateway{}
	s := newTestScheduler(store, gateway, at(t, 13, 45))

	for i := 0; i < 3; i++ {
		if _, err := s.RunCycle(context.Background()); err != nil {
			t.Fatalf("RunCycle %d: %v", i, err)
		}
	}
	if len(gateway.calls) != 0 {
		t.Errorf("gateway called for cancelled appointment: %d calls", len(gateway.calls))
	}
	if store.alarmSent(1) {
		t.Error("cancelled appointment should stay unmarked")
	}
}

func TestRunCycle_MissingEmailMarksWithoutSend(t *testing.T) {
	store := &fakeStore{
		appointments: []entity.Appointment{
			{ID: 1, PatientID: 10, ProfessionalID: 20, Date: day(t), Time: "14:00", Status: entity.AppointmentStatusConfirmed},
		},
		patients:      map[int]*entity.Patient{10: {ID: 10, Name: "Maria"}},
		professionals: map[int]*entity.Professional{20: {ID: 20, Name: "Dra. Ana", Email: ""}},
	}
	gateway := &fakeGateway{}
	s := newTestScheduler(store, gateway, at(t, 13, 45))

	stats, err := s.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if len(gateway.calls) != 0 {
		t.Errorf("gateway called despite missing email: %d calls", len(gateway.calls))
	}
	if stats.Skipped != 1 {
		t.Errorf("stats.Skipped: got %d, want 1", stats.Skipped)
	}
	if !store.alarmSent(1) {
		t.Error("undeliverable appointment should be marked sent")
	}
}

func TestRunCycle_MissingProfessionalMarksWithoutSend(t *testing.T) {
	store := &fakeStore{
		appointments: []entity.Appointment{
			{ID: 1, PatientID: 10, ProfessionalID: 99, Date: day(t), Time: "14:00", Status: entity.AppointmentStatusConfirmed},
		},
		patients:      map[int]*entity.Patient{10: {ID: 10, Name: "Maria"}},
		professionals: map[int]*entity.Professional{},
	}
	gateway := &fakeGateway{}
	s := newTestScheduler(store, gateway, at(t, 13, 45))

	if _, err := s.RunCycle(context.Background()); err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if len(gateway.calls) != 0 {
		t.Errorf("gateway called despite missing professional: %d calls", len(gateway.calls))
	}
	if !store.alarmSent(1) {
		t.Error("appointment without professional should be marked sent")
	}
}

func TestRunCycle_GatewayFailureRetriesNextCycle(t *testing.T) {
	store := &fakeStore{
		appointments: []entity.Appointment{
			{ID: 1, PatientID: 10, ProfessionalID: 20, Date: day(t), Time: "14:00", Status: entity.AppointmentStatusConfirmed},
		},
		patients:      map[int]*entity.Patient{10: {ID: 10, Name: "Maria"}},
		professionals: map[int]*entity.Professional{20: {ID: 20, Name: "Dra. Ana", Email: "ana@clinica.com"}},
	}
	gateway := &fakeGateway{failAll: true}
	s := newTestScheduler(store, gateway, at(t, 13, 45))

	stats, err := s.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if stats.Failed != 1 || stats.Sent != 0 {
		t.Errorf("stats after failure: got %+v", stats)
	}
	if store.alarmSent(1) {
		t.Error("alarm_sent must stay false after gateway failure")
	}

	// Next cycle, transport recovered: same appointment is retried.
	gateway.failAll = false
	s.clock = &fakeClock{now: at(t, 13, 46)}
	stats, err = s.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("second RunCycle: %v", err)
	}
	if stats.Sent != 1 {
		t.Errorf("stats.Sent after retry: got %d, want 1", stats.Sent)
	}
	if len(gateway.calls) != 2 {
		t.Errorf("gateway calls: got %d, want 2", len(gateway.calls))
	}
	if !store.alarmSent(1) {
		t.Error("alarm_sent should be set after successful retry")
	}
}

func TestRunCycle_PastAppointmentAgesOut(t *testing.T) {
	store := &fakeStore{
		appointments: []entity.Appointment{
			{ID: 1, PatientID: 10, ProfessionalID: 20, Date: day(t), Time: "09:00", Status: entity.AppointmentStatusConfirmed},
		},
		patients:      map[int]*entity.Patient{10: {ID: 10, Name: "Maria"}},
		professionals: map[int]*entity.Professional{20: {ID: 20, Name: "Dra. Ana", Email: "ana@clinica.com"}},
	}
	gateway := &fakeGateway{}
	s := newTestScheduler(store, gateway, at(t, 13, 0))

	stats, err := s.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if len(gateway.calls) != 0 {
		t.Errorf("gateway called for past appointment: %d calls", len(gateway.calls))
	}
	if stats.Scanned != 1 || stats.Sent != 0 || stats.Skipped != 0 {
		t.Errorf("stats: got %+v", stats)
	}
	if store.alarmSent(1) {
		t.Error("aged-out appointment should stay unmarked")
	}
}

func TestRunCycle_MixedRecipients(t *testing.T) {
	store := &fakeStore{
		appointments: []entity.Appointment{
			{ID: 1, PatientID: 10, ProfessionalID: 20, Date: day(t), Time: "14:00", Status: entity.AppointmentStatusConfirmed},
			{ID: 2, PatientID: 11, ProfessionalID: 21, Date: day(t), Time: "14:10", Status: entity.AppointmentStatusConfirmed},
		},
		patients: map[int]*entity.Patient{
			10: {ID: 10, Name: "Maria"},
			11: {ID: 11, Name: "João"},
		},
		professionals: map[int]*entity.Professional{
			20: {ID: 20, Name: "Dra. Ana", Email: "ana@clinica.com"},
			21: {ID: 21, Name: "Dr. Bruno", Email: ""},
		},
	}
	gateway := &fakeGateway{}
	s := newTestScheduler(store, gateway, at(t, 13, 45))

	stats, err := s.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if len(gateway.calls) != 1 {
		t.Fatalf("gateway calls: got %d, want 1", len(gateway.calls))
	}
	if stats.Sent != 1 || stats.Skipped != 1 {
		t.Errorf("stats: got %+v, want sent=1 skipped=1", stats)
	}
	if !store.alarmSent(1) || !store.alarmSent(2) {
		t.Error("both appointments should end marked")
	}
	if len(store.markCalls) != 1 {
		t.Errorf("markers should be committed once per cycle, got %d commits", len(store.markCalls))
	}
}

func TestRunCycle_StoreErrorAborts(t *testing.T) {
	store := &fakeStore{findErr: errors.New("connection refused")}
	gateway := &fakeGateway{}
	s := newTestScheduler(store, gateway, at(t, 13, 0))

	if _, err := s.RunCycle(context.Background()); err == nil {
		t.Fatal("expected error when store scan fails")
	}
	if len(gateway.calls) != 0 {
		t.Errorf("gateway called after store failure: %d calls", len(gateway.calls))
	}
}

func TestRunCycle_PatientMissingUsesFallbackName(t *testing.T) {
	store := &fakeStore{
		appointments: []entity.Appointment{
			{ID: 1, PatientID: 99, ProfessionalID: 20, Date: day(t), Time: "14:00", Status: entity.AppointmentStatusConfirmed},
		},
		patients:      map[int]*entity.Patient{},
		professionals: map[int]*entity.Professional{20: {ID: 20, Name: "Dra. Ana", Email: "ana@clinica.com"}},
	}
	gateway := &fakeGateway{}
	s := newTestScheduler(store, gateway, at(t, 13, 45))

	if _, err := s.RunCycle(context.Background()); err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if len(gateway.calls) != 1 {
		t.Fatalf("gateway calls: got %d, want 1", len(gateway.calls))
	}
	if gateway.calls[0].patient != "Desconhecido" {
		t.Errorf("patient name fallback: got %q", gateway.calls[0].patient)
	}
}

func TestRunCycle_CommitFailureKeepsMarkerUnset(t *testing.T) {
	store := &fakeStore{
		appointments: []entity.Appointment{
			{ID: 1, PatientID: 10, ProfessionalID: 20, Date: day(t), Time: "14:00", Status: entity.AppointmentStatusConfirmed},
		},
		patients:      map[int]*entity.Patient{10: {ID: 10, Name: "Maria"}},
		professionals: map[int]*entity.Professional{20: {ID: 20, Name: "Dra. Ana", Email: "ana@clinica.com"}},
		markErr:       errors.New("deadlock detected"),
	}
	gateway := &fakeGateway{}
	s := newTestScheduler(store, gateway, at(t, 13, 45))

	_, err := s.RunCycle(context.Background())
	if !errors.Is(err, store.markErr) {
		t.Fatalf("RunCycle error: got %v, want the commit failure", err)
	}
	if store.alarmSent(1) {
		t.Error("alarm_sent must stay false when the marker commit fails")
	}

	// Commit recovered: the appointment is picked up and re-sent next cycle.
	store.markErr = nil
	s.clock = &fakeClock{now: at(t, 13, 46)}
	stats, err := s.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("second RunCycle: %v", err)
	}
	if stats.Sent != 1 {
		t.Errorf("stats.Sent after commit recovery: got %d, want 1", stats.Sent)
	}
	if len(gateway.calls) != 2 {
		t.Errorf("gateway calls: got %d, want 2", len(gateway.calls))
	}
	if !store.alarmSent(1) {
		t.Error("alarm_sent should be set once the commit succeeds")
	}
}

func TestSchedulerSurvivesCyclePanic(t *testing.T) {
	store := &fakeStore{panicFirst: true}
	gateway := &fakeGateway{}
	s := NewReminderScheduler(store, gateway, nil, testLogger(), config.SchedulerConfig{
		Interval:  5 * time.Millisecond,
		Lookahead: 30 * time.Minute,
	})

	s.Start()
	deadline := time.Now().Add(2 * time.Second)
	for store.scans.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	s.Stop()

	if got := store.scans.Load(); got < 2 {
		t.Errorf("loop died after the panicking cycle: %d scans", got)
	}
}

func TestSchedulerStartStop(t *testing.T) {
	store := &fakeStore{}
	gateway := &fakeGateway{}
	s := NewReminderScheduler(store, gateway, nil, testLogger(), config.SchedulerConfig{
		Interval:  10 * time.Millisecond,
		Lookahead: 30 * time.Minute,
	})

	s.Start()
	s.Start() // second Start is a no-op
	deadline := time.Now().Add(2 * time.Second)
	for store.scans.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	s.Stop()
	s.Stop() // second Stop is a no-op

	if store.scans.Load() == 0 {
		t.Error("no cycle ran between Start and Stop")
	}
}
