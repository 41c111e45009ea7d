package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
	// RentalStatusOverdue is reserved. No transition assigns it:
	// overdue-ness is computed on demand from ACTIVE rentals via
	// IsOverdue, never stored.
	RentalStatusOverdue RentalStatus = "OVERDUE"
)

// LateFeeChargeDescription is the ledger key under which Complete
// records the late-return surcharge.
const LateFeeChargeDescription = "late fee"

// lateFeeMultiplier is applied per day of delay past the agreed end date.
var lateFeeMultiplier = decimal.RequireFromString("1.5")

// Rental is one booking of a vehicle by a customer for a date range.
// It references the customer and the vehicle without owning them, and
// owns its own status, charge ledger, and cost computation. DailyRate
// is snapshotted at creation and already includes any category
// discount; later category changes do not affect it.
type Rental struct {
	ID                string
	Customer          *Customer
	Vehicle           *Vehicle
	StartDate         time.Time
	EndDate           time.Time
	DailyRate         decimal.Decimal
	Status            RentalStatus
	ActualReturnDate  *time.Time
	TotalCost         *decimal.Decimal
	AdditionalCharges map[string]decimal.Decimal
}

func NewRental(id string, customer *Customer, vehicle *Vehicle, startDate, endDate time.Time, dailyRate decimal.Decimal) (*Rental, error) {
	if id == "" {
		return nil, fmt.Errorf("rental id must be a non-empty string")
	}
	if customer == nil {
		return nil, fmt.Errorf("rental customer must not be nil")
	}
	if vehicle == nil {
		return nil, fmt.Errorf("rental vehicle must not be nil")
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("rental start and end dates must be valid dates")
	}
	if DateOnly(startDate).After(DateOnly(endDate)) {
		return nil, fmt.Errorf("start date cannot be after end date")
	}
	if !dailyRate.IsPositive() {
		return nil, fmt.Errorf("daily rate must be a positive number")
	}

	return &Rental{
		ID:                id,
		Customer:          customer,
		Vehicle:           vehicle,
		StartDate:         DateOnly(startDate),
		EndDate:           DateOnly(endDate),
		DailyRate:         dailyRate,
		Status:            RentalStatusActive,
		AdditionalCharges: make(map[string]decimal.Decimal),
	}, nil
}

// Duration returns the rental length in days, inclusive of both
// endpoints: a same-day rental lasts 1 day.
func (r *Rental) Duration() int {
	return DaysBetween(r.StartDate, r.EndDate) + 1
}

// BaseCost is the agreed cost before any additional charges.
func (r *Rental) BaseCost() decimal.Decimal {
	return r.DailyRate.Mul(decimal.NewFromInt(int64(r.Duration())))
}

// IsOverdue reports whether the rental is still active past its agreed
// end date as of checkDate. A zero checkDate means today. Completed
// and cancelled rentals are never overdue.
func (r *Rental) IsOverdue(checkDate time.Time) bool {
	if checkDate.IsZero() {
		checkDate = time.Now()
	}
	if r.Status != RentalStatusActive {
		return false
	}
	return DateOnly(checkDate).After(r.EndDate)
}

// AddCharge records an additional charge on the rental's ledger.
// Re-adding a charge with the same description overwrites the previous
// amount; charges never accumulate under one key.
func (r *Rental) AddCharge(description string, amount decimal.Decimal) error {
	if description == "" {
		return fmt.Errorf("charge description must be a non-empty string")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("charge amount must be a positive number")
	}
	r.AdditionalCharges[description] = amount
	return nil
}

// Complete closes an active rental. It records the actual return date,
// adds the late fee to the charge ledger when the return is past the
// agreed end date, computes the final total, releases the vehicle, and
// returns the total cost. The total sums the charge ledger once, after
// the late fee is recorded, so the fee is never counted twice.
func (r *Rental) Complete(returnDate time.Time) (decimal.Decimal, error) {
	if returnDate.IsZero() {
		return decimal.Zero, fmt.Errorf("return date must be a valid date")
	}
	if r.Status != RentalStatusActive {
		return decimal.Zero, fmt.Errorf("complete rental %s: %w", r.ID, ErrRentalNotActive)
	}

	returnDate = DateOnly(returnDate)
	r.ActualReturnDate = &returnDate
	r.Status = RentalStatusCompleted

	if returnDate.After(r.EndDate) {
		delayDays := DaysBetween(r.EndDate, returnDate)
		lateFee := r.DailyRate.Mul(decimal.NewFromInt(int64(delayDays))).Mul(lateFeeMultiplier)
		if err := r.AddCharge(LateFeeChargeDescription, lateFee); err != nil {
			return decimal.Zero, err
		}
	}

	total := r.BaseCost()
	for _, amount := range r.AdditionalCharges {
		total = total.Add(amount)
	}
	r.TotalCost = &total

	r.Vehicle.ChangeStatus(VehicleStatusAvailable)

	return total, nil
}

// Cancel aborts a rental that has not yet been closed and releases the
// vehicle. Completed and cancelled rentals are terminal.
func (r *Rental) Cancel() error {
	if r.Status == RentalStatusCompleted || r.Status == RentalStatusCancelled {
		return fmt.Errorf("cancel rental %s: %w", r.ID, ErrRentalAlreadyClosed)
	}

	r.Status = RentalStatusCancelled
	r.Vehicle.ChangeStatus(VehicleStatusAvailable)
	return nil
}

func (r *Rental) String() string {
	return fmt.Sprintf("Rental %s: %s - %s, %s to %s, status: %s",
		r.ID, r.Customer.FullName(), r.Vehicle,
		r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"), r.Status)
}
