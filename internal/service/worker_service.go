package service

import (
	"context"
	"log"
	"time"
)

// WorkerService runs the overdue-appointment sweep: PENDING slots that have
// passed become EXPIRED, APPROVED ones become COMPLETED. The sweep is
// idempotent and order-independent across runs and never touches admission
// or bed state.
type WorkerService struct {
	appointmentRepo AppointmentRepository
	interval        time.Duration
}

func NewWorkerService(appointmentRepo AppointmentRepository, interval time.Duration) *WorkerService {
	return &WorkerService{
		appointmentRepo: appointmentRepo,
		interval:        interval,
	}
}

// Start begins the background sweep loop until the context is cancelled
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("Appointment sweep started - running every %s", w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Appointment sweep stopped")
			return
		case <-ticker.C:
			w.SweepOverdue(time.Now())
		}
	}
}

// SweepOverdue resolves all currently overdue appointments and returns how
// many were updated
func (w *WorkerService) SweepOverdue(now time.Time) int {
	overdue, err := w.appointmentRepo.FindOverdue(now)
	if err != nil {
		log.Printf("Error fetching overdue appointments: %v", err)
		return 0
	}

	updated := 0
	for i := range overdue {
		appointment := &overdue[i]
		if !appointment.ResolveOverdue(now) {
			continue
		}
		if err := w.appointmentRepo.Save(appointment); err != nil {
			log.Printf("Error updating appointment %d: %v", appointment.ID, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Printf("Appointment sweep updated %d of %d overdue", updated, len(overdue))
	}
	return updated
}
