package domain

import (
	"fmt"
	"time"
)

type CustomerCategory string

const (
	CustomerCategoryStandard CustomerCategory = "STANDARD"
	CustomerCategorySilver   CustomerCategory = "SILVER"
	CustomerCategoryGold     CustomerCategory = "GOLD"
	CustomerCategoryPlatinum CustomerCategory = "PLATINUM"
)

// DrivingLicense holds the license window and the vehicle categories
// the holder may drive.
type DrivingLicense struct {
	Number     string    `json:"number"`
	IssueDate  time.Time `json:"issue_date"`
	ExpiryDate time.Time `json:"expiry_date"`
	Categories []string  `json:"categories"`
}

func NewDrivingLicense(number string, issueDate, expiryDate time.Time, categories []string) (*DrivingLicense, error) {
	if number == "" {
		return nil, fmt.Errorf("license number must be a non-empty string")
	}
	if issueDate.IsZero() || expiryDate.IsZero() {
		return nil, fmt.Errorf("license issue and expiry dates must be valid dates")
	}
	if issueDate.After(expiryDate) {
		return nil, fmt.Errorf("license issue date cannot be after its expiry date")
	}
	for _, c := range categories {
		if c == "" {
			return nil, fmt.Errorf("license categories must be non-empty strings")
		}
	}

	return &DrivingLicense{
		Number:     number,
		IssueDate:  issueDate,
		ExpiryDate: expiryDate,
		Categories: categories,
	}, nil
}

// IsValid reports whether the license is valid on checkDate. A zero
// checkDate means today.
func (l *DrivingLicense) IsValid(checkDate time.Time) bool {
	if checkDate.IsZero() {
		checkDate = time.Now()
	}
	return !checkDate.After(l.ExpiryDate)
}

func (l *DrivingLicense) HasCategory(category string) bool {
	for _, c := range l.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Customer is a registered renter. Category starts STANDARD and is
// promoted through UpgradeCategory.
type Customer struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Address          string           `json:"address"`
	License          *DrivingLicense  `json:"license"`
	RegistrationDate time.Time        `json:"registration_date"`
	Category         CustomerCategory `json:"category"`
	RentalHistory    []string         `json:"rental_history,omitempty"`
}

func NewCustomer(id, firstName, lastName, email, phone, address string, license *DrivingLicense) (*Customer, error) {
	if id == "" {
		return nil, fmt.Errorf("customer id must be a non-empty string")
	}
	if firstName == "" {
		return nil, fmt.Errorf("first name must be a non-empty string")
	}
	if lastName == "" {
		return nil, fmt.Errorf("last name must be a non-empty string")
	}
	if email == "" {
		return nil, fmt.Errorf("email must be a non-empty string")
	}
	if phone == "" {
		return nil, fmt.Errorf("phone must be a non-empty string")
	}
	if address == "" {
		return nil, fmt.Errorf("address must be a non-empty string")
	}
	if license == nil {
		return nil, fmt.Errorf("customer must have a driving license")
	}

	return &Customer{
		ID:               id,
		FirstName:        firstName,
		LastName:         lastName,
		Email:            email,
		Phone:            phone,
		Address:          address,
		License:          license,
		RegistrationDate: time.Now(),
		Category:         CustomerCategoryStandard,
	}, nil
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CanRent reports whether the customer's license is valid today.
func (c *Customer) CanRent() bool {
	return c.License.IsValid(time.Time{})
}

func (c *Customer) UpgradeCategory(category CustomerCategory) {
	c.Category = category
}

func (c *Customer) AddRentalToHistory(rentalID string) error {
	if rentalID == "" {
		return fmt.Errorf("rental id must be a non-empty string")
	}
	c.RentalHistory = append(c.RentalHistory, rentalID)
	return nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s %s (ID: %s)", c.FirstName, c.LastName, c.ID)
}
