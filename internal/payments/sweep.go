package payments

import (
	"log"
	"time"

	"github.com/roamline/roamline-api/internal/models"
	"gorm.io/gorm"
)

// CancelStalePending cancels pending bookings older than ttl whose
// checkout session never completed. Booking creation and session
// creation are not one transaction, so a provider failure (or an
// abandoned checkout whose expiry event was never delivered) leaves
// pending rows behind; this is the reconciliation for them.
func CancelStalePending(db *gorm.DB, ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)
	res := db.Model(&models.Booking{}).
		Where("status = ? AND payment_id = ? AND created_at < ?", models.BookingStatusPending, "", cutoff).
		Update("status", models.BookingStatusCanceled)
	return res.RowsAffected, res.Error
}

// StartSweep runs CancelStalePending on a ticker until stop is closed.
func StartSweep(db *gorm.DB, ttl, interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := CancelStalePending(db, ttl)
				if err != nil {
					log.Printf("Pending booking sweep failed: %v", err)
				} else if n > 0 {
					log.Printf("Pending booking sweep canceled %d stale bookings", n)
				}
			case <-stop:
				return
			}
		}
	}()
}
