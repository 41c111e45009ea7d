package jobs

import (
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/logger"
)

// ReportOverdueRentals logs every active rental that is past its
// agreed end date. Overdue-ness stays a derived condition: the sweep
// reports, it never promotes a rental's status.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		today := jr.now()
		overdue := jr.manager.GetOverdueRentals(today)

		for _, r := range overdue {
			logger.Warn("Rental overdue",
				"rental_id", r.ID,
				"customer", r.Customer.FullName(),
				"vehicle", r.Vehicle.ID,
				"end_date", r.EndDate.Format("2006-01-02"),
				"days_overdue", domain.DaysBetween(r.EndDate, today),
			)
		}

		logger.Info("Overdue sweep finished", "count", len(overdue))
	})
}
