package domain

import "errors"

// Business-rule violations. These are distinct from argument validation
// failures, which are returned as plain formatted errors: callers can
// tell "disallowed by business rule" from "bad input" with errors.Is
// against the sentinels below.
var (
	ErrCustomerCannotRent      = errors.New("customer cannot rent: driving license is not valid")
	ErrLicenseExpiresBeforeEnd = errors.New("driving license expires before the rental end date")
	ErrVehicleNotAvailable     = errors.New("vehicle is not available")
	ErrInvalidRentalPeriod     = errors.New("start date cannot be after end date")
	ErrStartDateInPast         = errors.New("start date cannot be in the past")

	ErrRentalNotFound      = errors.New("rental not found")
	ErrRentalNotActive     = errors.New("rental is not active")
	ErrRentalAlreadyClosed = errors.New("rental is already completed or cancelled")
	ErrRentalNotCompleted  = errors.New("cannot review a rental that is not completed")

	ErrDuplicateCustomer = errors.New("customer with this id is already registered")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDuplicateVehicle  = errors.New("vehicle with this id already exists in the inventory")
	ErrVehicleNotFound   = errors.New("vehicle not found")
)
