package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/utils"
)

// RentalManager orchestrates the rental lifecycle: eligibility checks
// and pricing at creation, completion and cancellation, and aggregate
// reporting across rentals and reviews. It is the sole mutator of its
// collections and of the vehicle and customer state reached through a
// rental; every operation either fully succeeds or leaves all state
// unchanged.
type RentalManager struct {
	idGen   IDGenerator
	now     func() time.Time
	rentals map[string]*domain.Rental
	order   []string
	reviews []domain.Review
}

// NewRentalManager builds a manager with empty collections. A nil
// idGen falls back to random UUIDs.
func NewRentalManager(idGen IDGenerator) *RentalManager {
	if idGen == nil {
		idGen = UUIDGenerator{}
	}
	return &RentalManager{
		idGen:   idGen,
		now:     time.Now,
		rentals: make(map[string]*domain.Rental),
	}
}

// RentalReport aggregates rental statistics over a date window. A
// rental is selected when its lived interval overlaps the window: it
// started no later than the window end, and either has not been
// returned yet or was returned on or after the window start.
type RentalReport struct {
	PeriodStart           time.Time
	PeriodEnd             time.Time
	TotalRentals          int
	CompletedRentals      int
	ActiveRentals         int
	CancelledRentals      int
	OverdueRentals        int
	TotalRevenue          decimal.Decimal
	AverageRentalDuration float64
}

// CreateRental validates eligibility, prices the rental with the
// customer's category discount, and registers a new ACTIVE rental. On
// success the vehicle is marked RENTED and the rental id is appended
// to the customer's history. The first failing check wins and nothing
// is mutated.
func (m *RentalManager) CreateRental(customer *domain.Customer, vehicle *domain.Vehicle, startDate, endDate time.Time) (*domain.Rental, error) {
	if customer == nil {
		return nil, fmt.Errorf("customer must not be nil")
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle must not be nil")
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("start and end dates must be valid dates")
	}

	start := domain.DateOnly(startDate)
	end := domain.DateOnly(endDate)

	if !customer.CanRent() {
		return nil, fmt.Errorf("customer %s: %w", customer.ID, domain.ErrCustomerCannotRent)
	}
	if domain.DateOnly(customer.License.ExpiryDate).Before(end) {
		return nil, fmt.Errorf("customer %s: %w", customer.ID, domain.ErrLicenseExpiresBeforeEnd)
	}
	if !vehicle.IsAvailable() {
		return nil, fmt.Errorf("vehicle %s: %w", vehicle.ID, domain.ErrVehicleNotAvailable)
	}
	if start.After(end) {
		return nil, fmt.Errorf("create rental: %w", domain.ErrInvalidRentalPeriod)
	}
	if start.Before(domain.DateOnly(m.now())) {
		return nil, fmt.Errorf("create rental: %w", domain.ErrStartDateInPast)
	}

	dailyRate := utils.EffectiveDailyRate(vehicle.DailyRate, customer.Category)

	rentalID := m.idGen.NewID()
	rental, err := domain.NewRental(rentalID, customer, vehicle, start, end, dailyRate)
	if err != nil {
		return nil, err
	}

	vehicle.ChangeStatus(domain.VehicleStatusRented)
	if err := customer.AddRentalToHistory(rentalID); err != nil {
		return nil, err
	}
	m.rentals[rentalID] = rental
	m.order = append(m.order, rentalID)

	return rental, nil
}

// GetRental returns the rental with the given id, or nil when absent.
func (m *RentalManager) GetRental(rentalID string) (*domain.Rental, error) {
	if rentalID == "" {
		return nil, fmt.Errorf("rental id must be a non-empty string")
	}
	return m.rentals[rentalID], nil
}

// CompleteRental closes a rental and returns its final total cost,
// including any late fee.
func (m *RentalManager) CompleteRental(rentalID string, returnDate time.Time) (decimal.Decimal, error) {
	if rentalID == "" {
		return decimal.Zero, fmt.Errorf("rental id must be a non-empty string")
	}
	if returnDate.IsZero() {
		return decimal.Zero, fmt.Errorf("return date must be a valid date")
	}

	rental := m.rentals[rentalID]
	if rental == nil {
		return decimal.Zero, fmt.Errorf("rental %s: %w", rentalID, domain.ErrRentalNotFound)
	}
	if domain.DateOnly(returnDate).Before(rental.StartDate) {
		return decimal.Zero, fmt.Errorf("return date cannot be before the rental start date")
	}

	return rental.Complete(returnDate)
}

// CancelRental aborts a rental that has not been closed yet.
func (m *RentalManager) CancelRental(rentalID string) error {
	if rentalID == "" {
		return fmt.Errorf("rental id must be a non-empty string")
	}

	rental := m.rentals[rentalID]
	if rental == nil {
		return fmt.Errorf("rental %s: %w", rentalID, domain.ErrRentalNotFound)
	}
	return rental.Cancel()
}

// GetActiveRentals returns all ACTIVE rentals in creation order.
func (m *RentalManager) GetActiveRentals() []*domain.Rental {
	var active []*domain.Rental
	for _, id := range m.order {
		if r := m.rentals[id]; r.Status == domain.RentalStatusActive {
			active = append(active, r)
		}
	}
	return active
}

// GetOverdueRentals returns the ACTIVE rentals past their end date as
// of currentDate. A zero currentDate means today.
func (m *RentalManager) GetOverdueRentals(currentDate time.Time) []*domain.Rental {
	if currentDate.IsZero() {
		currentDate = m.now()
	}
	var overdue []*domain.Rental
	for _, id := range m.order {
		if r := m.rentals[id]; r.IsOverdue(currentDate) {
			overdue = append(overdue, r)
		}
	}
	return overdue
}

func (m *RentalManager) GetCustomerRentals(customerID string) ([]*domain.Rental, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer id must be a non-empty string")
	}
	var rentals []*domain.Rental
	for _, id := range m.order {
		if r := m.rentals[id]; r.Customer.ID == customerID {
			rentals = append(rentals, r)
		}
	}
	return rentals, nil
}

func (m *RentalManager) GetVehicleRentalHistory(vehicleID string) ([]*domain.Rental, error) {
	if vehicleID == "" {
		return nil, fmt.Errorf("vehicle id must be a non-empty string")
	}
	var rentals []*domain.Rental
	for _, id := range m.order {
		if r := m.rentals[id]; r.Vehicle.ID == vehicleID {
			rentals = append(rentals, r)
		}
	}
	return rentals, nil
}

// AddReview records a review for a completed rental and returns it.
// Rentals that are not COMPLETED cannot be reviewed.
func (m *RentalManager) AddReview(rentalID string, rating int, comment string, reviewDate time.Time) (domain.Review, error) {
	if rentalID == "" {
		return domain.Review{}, fmt.Errorf("rental id must be a non-empty string")
	}

	rental := m.rentals[rentalID]
	if rental == nil {
		return domain.Review{}, fmt.Errorf("rental %s: %w", rentalID, domain.ErrRentalNotFound)
	}
	if rental.Status != domain.RentalStatusCompleted {
		return domain.Review{}, fmt.Errorf("rental %s: %w", rentalID, domain.ErrRentalNotCompleted)
	}

	review, err := domain.NewReview(rentalID, rental.Customer.ID, rating, comment, reviewDate)
	if err != nil {
		return domain.Review{}, err
	}

	m.reviews = append(m.reviews, review)
	return review, nil
}

// GetReviewsForCustomer returns the customer's reviews in the order
// they were added.
func (m *RentalManager) GetReviewsForCustomer(customerID string) []domain.Review {
	var reviews []domain.Review
	for _, r := range m.reviews {
		if r.CustomerID == customerID {
			reviews = append(reviews, r)
		}
	}
	return reviews
}

// GetAverageRatingForCustomer returns the arithmetic mean of the
// customer's review ratings, or 0.0 when the customer has none.
func (m *RentalManager) GetAverageRatingForCustomer(customerID string) float64 {
	reviews := m.GetReviewsForCustomer(customerID)
	if len(reviews) == 0 {
		return 0.0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// GenerateRentalReport aggregates statistics over the rentals whose
// lived interval overlaps the report window. Overdue counts here are
// retroactive late completions (plus any rental carrying the reserved
// OVERDUE status); a rental that is currently active and overdue is
// reported by GetOverdueRentals instead.
func (m *RentalManager) GenerateRentalReport(startDate, endDate time.Time) (RentalReport, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return RentalReport{}, fmt.Errorf("report start and end dates must be valid dates")
	}
	start := domain.DateOnly(startDate)
	end := domain.DateOnly(endDate)
	if start.After(end) {
		return RentalReport{}, fmt.Errorf("report start date cannot be after its end date")
	}

	var selected []*domain.Rental
	for _, id := range m.order {
		r := m.rentals[id]
		if r.StartDate.After(end) {
			continue
		}
		if r.ActualReturnDate == nil || !r.ActualReturnDate.Before(start) {
			selected = append(selected, r)
		}
	}

	report := RentalReport{
		PeriodStart:  start,
		PeriodEnd:    end,
		TotalRentals: len(selected),
		TotalRevenue: decimal.Zero,
	}

	totalDuration := 0
	for _, r := range selected {
		totalDuration += r.Duration()
		switch r.Status {
		case domain.RentalStatusCompleted:
			report.CompletedRentals++
			if r.TotalCost != nil {
				report.TotalRevenue = report.TotalRevenue.Add(*r.TotalCost)
			}
			if r.ActualReturnDate != nil && r.ActualReturnDate.After(r.EndDate) {
				report.OverdueRentals++
			}
		case domain.RentalStatusActive:
			report.ActiveRentals++
		case domain.RentalStatusCancelled:
			report.CancelledRentals++
		case domain.RentalStatusOverdue:
			report.OverdueRentals++
		}
	}
	if len(selected) > 0 {
		report.AverageRentalDuration = float64(totalDuration) / float64(len(selected))
	}

	return report, nil
}
