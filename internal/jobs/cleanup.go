package jobs

import (
	"log"
	"time"

	"github.com/movex-app/movex-backend/internal/models"
	"github.com/movex-app/movex-backend/internal/storage"
)

// CleanupJob periodically deletes OTP rows past their window. Expiry
// itself is evaluated lazily at verification time; this job only keeps
// dead rows from accumulating.
type CleanupJob struct {
	store    storage.Store
	interval time.Duration
	stop     chan struct{}
}

// NewCleanupJob creates the OTP sweeper.
func NewCleanupJob(store storage.Store, interval time.Duration) *CleanupJob {
	return &CleanupJob{
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start runs the sweep loop in the background.
func (j *CleanupJob) Start() {
	log.Printf("Starting OTP cleanup job (every %v)", j.interval)
	go j.run()
}

// Stop halts the sweep loop.
func (j *CleanupJob) Stop() {
	log.Println("Stopping OTP cleanup job...")
	close(j.stop)
}

func (j *CleanupJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.stop:
			return
		}
	}
}

func (j *CleanupJob) sweep() {
	cutoff := time.Now().Add(-models.OTPTTL)
	deleted, err := j.store.DeleteOTPsCreatedBefore(cutoff)
	if err != nil {
		log.Printf("Error sweeping expired OTPs: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Swept %d expired OTP records", deleted)
	}
}
