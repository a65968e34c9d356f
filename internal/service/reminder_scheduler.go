package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"clinic-backend/config"
	"clinic-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Clock abstracts time.Now so cycles can be driven in tests without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ReminderStore is the persistence surface the scheduler needs. The production
// implementation wraps gorm; tests use an in-memory fake.
type ReminderStore interface {
	// FindPendingReminders returns the given day's appointments with
	// alarm_sent = false and status != Cancelado.
	FindPendingReminders(ctx context.Context, day time.Time) ([]entity.Appointment, error)
	FindPatient(ctx context.Context, id int) (*entity.Patient, error)
	FindProfessional(ctx context.Context, id int) (*entity.Professional, error)
	// MarkAlarmSent commits the cycle's idempotency markers in one transaction.
	MarkAlarmSent(ctx context.Context, ids []int) error
}

// ReminderGateway delivers a reminder notification. Implementations must
// swallow transport errors and report plain success/failure.
type ReminderGateway interface {
	SendAppointmentReminder(recipientEmail, recipientName, patientName, dateStr, timeStr string) bool
}

// ReminderAuditor records reminder outcomes in the audit trail. May be nil.
type ReminderAuditor interface {
	RecordReminderOutcome(ctx context.Context, action string, appointmentID int)
}

// CycleStats summarizes one scan-evaluate-notify-commit pass.
type CycleStats struct {
	Scanned int // candidates returned by the store
	Sent    int // reminders delivered by the gateway
	Skipped int // marked sent without delivery (no recipient email)
	Failed  int // gateway failures, retried next cycle
}

// ReminderScheduler scans upcoming appointments and notifies the professional
// once per appointment. Exactly one instance must run per deployment: the
// read-then-commit pattern is not safe against a concurrent replica.
type ReminderScheduler struct {
	store     ReminderStore
	gateway   ReminderGateway
	auditor   ReminderAuditor
	log       *logrus.Logger
	clock     Clock
	interval  time.Duration
	lookahead time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
	started  atomic.Bool
	stopped  atomic.Bool
}

func NewReminderScheduler(
	store ReminderStore,
	gateway ReminderGateway,
	auditor ReminderAuditor,
	log *logrus.Logger,
	cfg config.SchedulerConfig,
) *ReminderScheduler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	lookahead := cfg.Lookahead
	if lookahead <= 0 {
		lookahead = 30 * time.Minute
	}
	return &ReminderScheduler{
		store:     store,
		gateway:   gateway,
		auditor:   auditor,
		log:       log,
		clock:     systemClock{},
		interval:  interval,
		lookahead: lookahead,
		stopChan:  make(chan struct{}),
	}
}

// Start launches the recurring cycle on its own goroutine. Safe to call once.
func (s *ReminderScheduler) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go s.run()
	s.log.Infof("Reminder scheduler started: interval=%s lookahead=%s", s.interval, s.lookahead)
}

// Stop halts the cycle loop and waits for an in-flight cycle to finish.
// Safe to call multiple times.
func (s *ReminderScheduler) Stop() {
	if !s.started.Load() {
		return
	}
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("Reminder scheduler stopped")
	}
}

func (s *ReminderScheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// First cycle immediately, then on every tick.
	s.safeCycle()
	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.safeCycle()
		}
	}
}

// safeCycle guards a cycle so a panic or store failure never kills the loop;
// the next cycle starts fresh on the following tick.
func (s *ReminderScheduler) safeCycle() {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("Reminder cycle panicked: %v", r)
		}
	}()

	stats, err := s.RunCycle(context.Background())
	if err != nil {
		s.log.Errorf("Reminder cycle failed: %+v", err)
		return
	}
	if stats.Scanned > 0 {
		s.log.Infof("Reminder cycle: scanned=%d sent=%d skipped=%d failed=%d",
			stats.Scanned, stats.Sent, stats.Skipped, stats.Failed)
	}
}

// RunCycle executes one pass: scan today's unreminded appointments, notify the
// ones inside [now, now+lookahead], and commit all markers in one transaction.
//
// Outcomes per candidate:
//   - outside the window: untouched, revisited next cycle
//   - professional missing or without email: marked sent with no delivery
//     attempt (terminal, no retries)
//   - gateway success: marked sent
//   - gateway failure: left unmarked, retried while still inside the window
func (s *ReminderScheduler) RunCycle(ctx context.Context) (CycleStats, error) {
	var stats CycleStats

	now := s.clock.Now()
	appointments, err := s.store.FindPendingReminders(ctx, now)
	if err != nil {
		return stats, err
	}
	stats.Scanned = len(appointments)

	var sentIDs []int
	for _, appt := range appointments {
		startsAt, err := appt.StartsAt()
		if err != nil {
			s.log.Warnf("Appointment %d has unparseable time, skipping: %+v", appt.ID, err)
			continue
		}
		if !withinWindow(now, startsAt, s.lookahead) {
			continue
		}

		professional, err := s.store.FindProfessional(ctx, appt.ProfessionalID)
		if err != nil {
			return stats, err
		}
		if professional == nil || professional.Email == "" {
			// Undeliverable: mark sent so it is never attempted again.
			sentIDs = append(sentIDs, appt.ID)
			stats.Skipped++
			s.recordOutcome(ctx, entity.AuditActionReminderSkipped, appt.ID)
			s.log.Warnf("Appointment %d has no reminder recipient, marking as sent", appt.ID)
			continue
		}

		patient, err := s.store.FindPatient(ctx, appt.PatientID)
		if err != nil {
			return stats, err
		}
		patientName := "Desconhecido"
		if patient != nil {
			patientName = patient.Name
		}

		ok := s.gateway.SendAppointmentReminder(
			professional.Email,
			professional.Name,
			patientName,
			startsAt.Format("02/01/2006"),
			startsAt.Format("15:04"),
		)
		if !ok {
			// Left unmarked: retried next cycle while the window lasts.
			stats.Failed++
			s.log.Warnf("Reminder delivery failed for appointment %d, will retry", appt.ID)
			continue
		}

		sentIDs = append(sentIDs, appt.ID)
		stats.Sent++
		s.recordOutcome(ctx, entity.AuditActionReminderSent, appt.ID)
	}

	if err := s.store.MarkAlarmSent(ctx, sentIDs); err != nil {
		return stats, err
	}
	return stats, nil
}

func (s *ReminderScheduler) recordOutcome(ctx context.Context, action string, appointmentID int) {
	if s.auditor != nil {
		s.auditor.RecordReminderOutcome(ctx, action, appointmentID)
	}
}

// withinWindow reports whether the appointment instant falls inside
// [now, now+lookahead], inclusive at both ends.
func withinWindow(now, instant time.Time, lookahead time.Duration) bool {
	return !instant.Before(now) && !instant.After(now.Add(lookahead))
}
