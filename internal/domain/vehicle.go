package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "AVAILABLE"
	VehicleStatusRented       VehicleStatus = "RENTED"
	VehicleStatusMaintenance  VehicleStatus = "MAINTENANCE"
	VehicleStatusOutOfService VehicleStatus = "OUT_OF_SERVICE"
)

type VehicleType string

const (
	VehicleTypeEconomy  VehicleType = "ECONOMY"
	VehicleTypeCompact  VehicleType = "COMPACT"
	VehicleTypeStandard VehicleType = "STANDARD"
	VehicleTypePremium  VehicleType = "PREMIUM"
	VehicleTypeSUV      VehicleType = "SUV"
	VehicleTypeVan      VehicleType = "VAN"
)

// MaintenanceRecord is one entry in a vehicle's maintenance history.
type MaintenanceRecord struct {
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Cost        decimal.Decimal `json:"cost"`
}

// CarDetails carries the car-specific payload. Vehicles without it are
// generic fleet units; VehicleInventory and the rental flow only use
// the shared Vehicle fields.
type CarDetails struct {
	Doors        int    `json:"doors"`
	FuelType     string `json:"fuel_type"`
	Transmission string `json:"transmission"`
}

// Vehicle is a rentable fleet unit. Status starts AVAILABLE and is
// mutated only through ChangeStatus.
type Vehicle struct {
	ID                 string              `json:"id"`
	Make               string              `json:"make"`
	Model              string              `json:"model"`
	Year               int                 `json:"year"`
	RegistrationNumber string              `json:"registration_number"`
	DailyRate          decimal.Decimal     `json:"daily_rate"`
	Type               VehicleType         `json:"type"`
	Status             VehicleStatus       `json:"status"`
	MaintenanceHistory []MaintenanceRecord `json:"maintenance_history,omitempty"`
	Car                *CarDetails         `json:"car,omitempty"`
}

// NewVehicle validates the shared vehicle fields and returns a vehicle
// in AVAILABLE status.
func NewVehicle(id, make, model string, year int, registrationNumber string, dailyRate decimal.Decimal, vehicleType VehicleType) (*Vehicle, error) {
	if id == "" {
		return nil, fmt.Errorf("vehicle id must be a non-empty string")
	}
	if make == "" {
		return nil, fmt.Errorf("vehicle make must be a non-empty string")
	}
	if model == "" {
		return nil, fmt.Errorf("vehicle model must be a non-empty string")
	}
	maxYear := time.Now().Year() + 1
	if year < 1900 || year > maxYear {
		return nil, fmt.Errorf("vehicle year must be between 1900 and %d", maxYear)
	}
	if registrationNumber == "" {
		return nil, fmt.Errorf("registration number must be a non-empty string")
	}
	if !dailyRate.IsPositive() {
		return nil, fmt.Errorf("daily rate must be a positive number")
	}

	return &Vehicle{
		ID:                 id,
		Make:               make,
		Model:              model,
		Year:               year,
		RegistrationNumber: registrationNumber,
		DailyRate:          dailyRate,
		Type:               vehicleType,
		Status:             VehicleStatusAvailable,
	}, nil
}

// NewCar builds a vehicle carrying the car payload.
func NewCar(id, make, model string, year int, registrationNumber string, dailyRate decimal.Decimal, vehicleType VehicleType, doors int, fuelType, transmission string) (*Vehicle, error) {
	v, err := NewVehicle(id, make, model, year, registrationNumber, dailyRate, vehicleType)
	if err != nil {
		return nil, err
	}
	if doors <= 0 {
		return nil, fmt.Errorf("number of doors must be a positive integer")
	}
	if fuelType == "" {
		return nil, fmt.Errorf("fuel type must be a non-empty string")
	}
	if transmission == "" {
		return nil, fmt.Errorf("transmission must be a non-empty string")
	}

	v.Car = &CarDetails{
		Doors:        doors,
		FuelType:     fuelType,
		Transmission: transmission,
	}
	return v, nil
}

func (v *Vehicle) IsAvailable() bool {
	return v.Status == VehicleStatusAvailable
}

func (v *Vehicle) ChangeStatus(status VehicleStatus) {
	v.Status = status
}

// AddMaintenanceRecord appends a service entry to the vehicle's
// maintenance history. Cost may be zero (warranty work).
func (v *Vehicle) AddMaintenanceRecord(description string, date time.Time, cost decimal.Decimal) error {
	if description == "" {
		return fmt.Errorf("maintenance description must be a non-empty string")
	}
	if date.IsZero() {
		return fmt.Errorf("maintenance date must be a valid date")
	}
	if cost.IsNegative() {
		return fmt.Errorf("maintenance cost must be a non-negative number")
	}

	v.MaintenanceHistory = append(v.MaintenanceHistory, MaintenanceRecord{
		Description: description,
		Date:        date,
		Cost:        cost,
	})
	return nil
}

func (v *Vehicle) String() string {
	s := fmt.Sprintf("%s %s (%d) - %s", v.Make, v.Model, v.Year, v.RegistrationNumber)
	if v.Car != nil {
		s = fmt.Sprintf("%s, %d doors, %s, %s", s, v.Car.Doors, v.Car.FuelType, v.Car.Transmission)
	}
	return s
}
