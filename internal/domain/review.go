package domain

import (
	"fmt"
	"strings"
	"time"
)

// Review is a post-rental rating. Reviews are value objects: once
// constructed they are never modified.
type Review struct {
	RentalID   string    `json:"rental_id"`
	CustomerID string    `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"review_date"`
}

func NewReview(rentalID, customerID string, rating int, comment string, reviewDate time.Time) (Review, error) {
	if rating < 1 || rating > 5 {
		return Review{}, fmt.Errorf("rating must be between 1 and 5")
	}
	if rentalID == "" || customerID == "" {
		return Review{}, fmt.Errorf("rental id and customer id must be non-empty strings")
	}

	return Review{
		RentalID:   rentalID,
		CustomerID: customerID,
		Rating:     rating,
		Comment:    comment,
		ReviewDate: reviewDate,
	}, nil
}

// IsPositive reports whether the rating is 4 or 5.
func (r Review) IsPositive() bool {
	return r.Rating >= 4
}

// ContainsKeywords reports whether the comment contains any of the
// given keywords, case-insensitively.
func (r Review) ContainsKeywords(keywords []string) bool {
	comment := strings.ToLower(r.Comment)
	for _, kw := range keywords {
		if strings.Contains(comment, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func (r Review) String() string {
	return fmt.Sprintf("[%s] %s: %d/5 - %q", r.ReviewDate.Format("2006-01-02"), r.CustomerID, r.Rating, r.Comment)
}
