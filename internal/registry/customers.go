package registry

import (
	"fmt"
	"strings"

	"vehicle-rental-backend/internal/domain"
)

// CustomerRegistry is the in-memory collection of registered customers.
// It keeps insertion order so listings are reproducible across runs.
type CustomerRegistry struct {
	customers map[string]*domain.Customer
	order     []string
}

func NewCustomerRegistry() *CustomerRegistry {
	return &CustomerRegistry{
		customers: make(map[string]*domain.Customer),
	}
}

func (r *CustomerRegistry) Register(customer *domain.Customer) error {
	if customer == nil {
		return fmt.Errorf("customer must not be nil")
	}
	if _, ok := r.customers[customer.ID]; ok {
		return fmt.Errorf("register customer %s: %w", customer.ID, domain.ErrDuplicateCustomer)
	}
	r.customers[customer.ID] = customer
	r.order = append(r.order, customer.ID)
	return nil
}

func (r *CustomerRegistry) Remove(customerID string) error {
	if customerID == "" {
		return fmt.Errorf("customer id must be a non-empty string")
	}
	if _, ok := r.customers[customerID]; !ok {
		return fmt.Errorf("remove customer %s: %w", customerID, domain.ErrCustomerNotFound)
	}
	delete(r.customers, customerID)
	for i, id := range r.order {
		if id == customerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the customer with the given id, or nil when absent.
func (r *CustomerRegistry) Get(customerID string) *domain.Customer {
	return r.customers[customerID]
}

// FindByLastName matches last names case-insensitively.
func (r *CustomerRegistry) FindByLastName(lastName string) []*domain.Customer {
	var found []*domain.Customer
	for _, id := range r.order {
		c := r.customers[id]
		if strings.EqualFold(c.LastName, lastName) {
			found = append(found, c)
		}
	}
	return found
}

func (r *CustomerRegistry) GetByCategory(category domain.CustomerCategory) []*domain.Customer {
	var found []*domain.Customer
	for _, id := range r.order {
		if c := r.customers[id]; c.Category == category {
			found = append(found, c)
		}
	}
	return found
}

func (r *CustomerRegistry) Count() int {
	return len(r.customers)
}
