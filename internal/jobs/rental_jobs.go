package jobs

import (
	"context"
	"fmt"
	"time"

	"evrental-backend/internal/domain"
	"evrental-backend/internal/logger"
)

// AccrueLateFees adds one late fee ledger entry per overdue day for active
// bookings past their end date. A booking gets at most one entry per day.
func (jr *JobRunner) AccrueLateFees() {
	jr.runWithRecovery("AccrueLateFees", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format("2006-01-02")

		query := `
			SELECT b.id, b.end_date, v.late_fee_per_day_cents
			FROM bookings b
			JOIN vehicles v ON v.id = b.vehicle_id
			WHERE b.status = 'active'
			  AND b.end_date < $1
			  AND NOT EXISTS (
				SELECT 1 FROM fee_entries f
				WHERE f.booking_id = b.id
				  AND f.type = 'LATE_FEE'
				  AND f.created_on::date = $1::date
			  )
		`

		rows, err := jr.db.QueryContext(ctx, query, today)
		if err != nil {
			logger.Error("Failed to find overdue bookings", "error", err)
			return
		}
		defer rows.Close()

		type overdue struct {
			bookingID int32
			endDate   string
			feePerDay int64
		}
		var found []overdue
		for rows.Next() {
			var o overdue
			if err := rows.Scan(&o.bookingID, &o.endDate, &o.feePerDay); err != nil {
				logger.Error("Failed to scan overdue booking", "error", err)
				continue
			}
			found = append(found, o)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue bookings", "error", err)
			return
		}

		count := 0
		for _, o := range found {
			fee := o.feePerDay
			if fee <= 0 {
				fee = jr.config.Scheduler.LateFeePerDayCents
			}
			entry := &domain.FeeEntry{
				BookingID:   o.bookingID,
				Type:        domain.FeeTypeLate,
				AmountCents: fee,
				Description: fmt.Sprintf("Late fee for %s (due back %s)", today, o.endDate),
			}
			if err := jr.store.FeeLedgerRepository.Create(ctx, entry); err != nil {
				logger.Error("Failed to create late fee entry", "booking_id", o.bookingID, "error", err)
				continue
			}
			count++
			logger.Debug("Accrued late fee", "booking_id", o.bookingID, "amount_cents", fee)
		}

		logger.Info("Accrued late fees", "count", count)
	})
}

// ExpirePendingBookings cancels bookings that were never confirmed within
// the configured window.
func (jr *JobRunner) ExpirePendingBookings() {
	jr.runWithRecovery("ExpirePendingBookings", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-time.Duration(jr.config.Scheduler.PendingExpiryHours) * time.Hour)

		query := `
			UPDATE bookings
			SET status = 'cancelled',
			    updated_on = NOW()
			WHERE status = 'pending'
			  AND created_on < $1
			RETURNING id, code
		`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to expire pending bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id int32
			var code string
			if err := rows.Scan(&id, &code); err != nil {
				logger.Error("Failed to scan expired booking", "error", err)
				continue
			}
			count++
			logger.Debug("Expired pending booking", "booking_id", id, "code", code)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expired bookings", "error", err)
			return
		}

		logger.Info("Expired pending bookings", "count", count)
	})
}

// SendReturnReminders emails renters whose rental ends tomorrow.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

		query := `
			SELECT b.code, b.end_date, u.email, u.name
			FROM bookings b
			JOIN users u ON u.id = b.renter_id
			WHERE b.status = 'active'
			  AND b.end_date = $1
		`

		rows, err := jr.db.QueryContext(ctx, query, tomorrow)
		if err != nil {
			logger.Error("Failed to find bookings due tomorrow", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var code, endDate, email, name string
			if err := rows.Scan(&code, &endDate, &email, &name); err != nil {
				logger.Error("Failed to scan reminder row", "error", err)
				continue
			}
			if err := jr.services.Email.SendReturnReminder(ctx, email, name, code, endDate); err != nil {
				logger.Error("Failed to send return reminder", "booking_code", code, "error", err)
				continue
			}
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating reminder rows", "error", err)
			return
		}

		logger.Info("Sent return reminders", "count", count)
	})
}
