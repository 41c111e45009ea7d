package registry

import (
	"fmt"

	"vehicle-rental-backend/internal/domain"
)

// VehicleInventory is the in-memory fleet. It operates over the shared
// Vehicle capability set (availability, status, daily rate) regardless
// of whether a unit carries the car payload. Insertion order is kept
// for reproducible listings.
type VehicleInventory struct {
	vehicles map[string]*domain.Vehicle
	order    []string
}

func NewVehicleInventory() *VehicleInventory {
	return &VehicleInventory{
		vehicles: make(map[string]*domain.Vehicle),
	}
}

func (inv *VehicleInventory) Add(vehicle *domain.Vehicle) error {
	if vehicle == nil {
		return fmt.Errorf("vehicle must not be nil")
	}
	if _, ok := inv.vehicles[vehicle.ID]; ok {
		return fmt.Errorf("add vehicle %s: %w", vehicle.ID, domain.ErrDuplicateVehicle)
	}
	inv.vehicles[vehicle.ID] = vehicle
	inv.order = append(inv.order, vehicle.ID)
	return nil
}

func (inv *VehicleInventory) Remove(vehicleID string) error {
	if vehicleID == "" {
		return fmt.Errorf("vehicle id must be a non-empty string")
	}
	if _, ok := inv.vehicles[vehicleID]; !ok {
		return fmt.Errorf("remove vehicle %s: %w", vehicleID, domain.ErrVehicleNotFound)
	}
	delete(inv.vehicles, vehicleID)
	for i, id := range inv.order {
		if id == vehicleID {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the vehicle with the given id, or nil when absent.
func (inv *VehicleInventory) Get(vehicleID string) *domain.Vehicle {
	return inv.vehicles[vehicleID]
}

func (inv *VehicleInventory) GetAvailable() []*domain.Vehicle {
	var available []*domain.Vehicle
	for _, id := range inv.order {
		if v := inv.vehicles[id]; v.IsAvailable() {
			available = append(available, v)
		}
	}
	return available
}

func (inv *VehicleInventory) GetAvailableByType(vehicleType domain.VehicleType) []*domain.Vehicle {
	var available []*domain.Vehicle
	for _, id := range inv.order {
		if v := inv.vehicles[id]; v.IsAvailable() && v.Type == vehicleType {
			available = append(available, v)
		}
	}
	return available
}

// CountByStatus tallies the fleet by vehicle status. Every status key
// is present in the result, including zero counts.
func (inv *VehicleInventory) CountByStatus() map[domain.VehicleStatus]int {
	counts := map[domain.VehicleStatus]int{
		domain.VehicleStatusAvailable:    0,
		domain.VehicleStatusRented:       0,
		domain.VehicleStatusMaintenance:  0,
		domain.VehicleStatusOutOfService: 0,
	}
	for _, v := range inv.vehicles {
		counts[v.Status]++
	}
	return counts
}

func (inv *VehicleInventory) Count() int {
	return len(inv.vehicles)
}
