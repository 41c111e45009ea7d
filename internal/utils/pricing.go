package utils

import (
	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/domain"
)

// Category discount factors. The factor multiplies the vehicle's base
// daily rate; factors never stack.
var (
	discountStandard = decimal.NewFromInt(1)
	discountSilver   = decimal.RequireFromString("0.95")
	discountGold     = decimal.RequireFromString("0.90")
	discountPlatinum = decimal.RequireFromString("0.85")
)

// DiscountFactor returns the rate multiplier for a customer category.
// Unknown categories get the STANDARD factor.
func DiscountFactor(category domain.CustomerCategory) decimal.Decimal {
	switch category {
	case domain.CustomerCategorySilver:
		return discountSilver
	case domain.CustomerCategoryGold:
		return discountGold
	case domain.CustomerCategoryPlatinum:
		return discountPlatinum
	default:
		return discountStandard
	}
}

// EffectiveDailyRate applies the category discount to a vehicle's base
// daily rate. The result is what gets snapshotted onto the rental.
func EffectiveDailyRate(baseRate decimal.Decimal, category domain.CustomerCategory) decimal.Decimal {
	return baseRate.Mul(DiscountFactor(category))
}
