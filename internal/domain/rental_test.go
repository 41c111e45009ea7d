package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testLicense(t *testing.T) *DrivingLicense {
	t.Helper()
	license, err := NewDrivingLicense("DL-123456", date(2015, 1, 1), date(2099, 1, 1), []string{"B"})
	require.NoError(t, err)
	return license
}

func testCustomer(t *testing.T) *Customer {
	t.Helper()
	customer, err := NewCustomer("CUST-1", "Jan", "Nowak", "jan@example.com", "+48 600 000 000", "ul. Prosta 1", testLicense(t))
	require.NoError(t, err)
	return customer
}

func testVehicle(t *testing.T, rate int64) *Vehicle {
	t.Helper()
	v, err := NewVehicle("VEH-1", "Skoda", "Octavia", 2022, "PO 11111", decimal.NewFromInt(rate), VehicleTypeStandard)
	require.NoError(t, err)
	return v
}

func activeRental(t *testing.T, start, end time.Time, rate int64) *Rental {
	t.Helper()
	r, err := NewRental("R-1", testCustomer(t), testVehicle(t, rate), start, end, decimal.NewFromInt(rate))
	require.NoError(t, err)
	return r
}

func TestNewRental(t *testing.T) {
	customer := testCustomer(t)
	vehicle := testVehicle(t, 150)

	t.Run("Valid rental starts active", func(t *testing.T) {
		r, err := NewRental("R-1", customer, vehicle, date(2024, 6, 1), date(2024, 6, 4), decimal.NewFromInt(150))
		require.NoError(t, err)
		assert.Equal(t, RentalStatusActive, r.Status)
		assert.Nil(t, r.ActualReturnDate)
		assert.Nil(t, r.TotalCost)
		assert.Empty(t, r.AdditionalCharges)
	})

	t.Run("Empty id", func(t *testing.T) {
		_, err := NewRental("", customer, vehicle, date(2024, 6, 1), date(2024, 6, 4), decimal.NewFromInt(150))
		assert.Error(t, err)
	})

	t.Run("Nil customer", func(t *testing.T) {
		_, err := NewRental("R-1", nil, vehicle, date(2024, 6, 1), date(2024, 6, 4), decimal.NewFromInt(150))
		assert.Error(t, err)
	})

	t.Run("Nil vehicle", func(t *testing.T) {
		_, err := NewRental("R-1", customer, nil, date(2024, 6, 1), date(2024, 6, 4), decimal.NewFromInt(150))
		assert.Error(t, err)
	})

	t.Run("Start after end", func(t *testing.T) {
		_, err := NewRental("R-1", customer, vehicle, date(2024, 6, 5), date(2024, 6, 4), decimal.NewFromInt(150))
		assert.Error(t, err)
	})

	t.Run("Non-positive rate", func(t *testing.T) {
		_, err := NewRental("R-1", customer, vehicle, date(2024, 6, 1), date(2024, 6, 4), decimal.Zero)
		assert.Error(t, err)
	})
}

func TestRentalDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"Same day", date(2024, 6, 1), date(2024, 6, 1), 1},
		{"Four day rental", date(2024, 6, 1), date(2024, 6, 4), 4},
		{"Cross month boundary", date(2024, 6, 29), date(2024, 7, 2), 4},
		{"Cross year boundary", date(2023, 12, 30), date(2024, 1, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := activeRental(t, tt.start, tt.end, 100)
			assert.Equal(t, tt.expected, r.Duration())
		})
	}
}

func TestRentalBaseCost(t *testing.T) {
	r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
	assert.True(t, decimal.NewFromInt(600).Equal(r.BaseCost()), "got %s", r.BaseCost())
}

func TestRentalIsOverdue(t *testing.T) {
	t.Run("Active before end date", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 100)
		assert.False(t, r.IsOverdue(date(2024, 6, 3)))
	})

	t.Run("Active on end date", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 100)
		assert.False(t, r.IsOverdue(date(2024, 6, 4)))
	})

	t.Run("Active past end date", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 100)
		assert.True(t, r.IsOverdue(date(2024, 6, 5)))
	})

	t.Run("Completed rental is never overdue", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 100)
		_, err := r.Complete(date(2024, 6, 10))
		require.NoError(t, err)
		assert.False(t, r.IsOverdue(date(2024, 6, 20)))
	})

	t.Run("Cancelled rental is never overdue", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 100)
		require.NoError(t, r.Cancel())
		assert.False(t, r.IsOverdue(date(2024, 6, 20)))
	})
}

func TestRentalAddCharge(t *testing.T) {
	r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 100)

	t.Run("Valid charge", func(t *testing.T) {
		require.NoError(t, r.AddCharge("cleaning", decimal.NewFromInt(50)))
		assert.True(t, decimal.NewFromInt(50).Equal(r.AdditionalCharges["cleaning"]))
	})

	t.Run("Same description overwrites", func(t *testing.T) {
		require.NoError(t, r.AddCharge("cleaning", decimal.NewFromInt(80)))
		assert.Len(t, r.AdditionalCharges, 1)
		assert.True(t, decimal.NewFromInt(80).Equal(r.AdditionalCharges["cleaning"]))
	})

	t.Run("Empty description", func(t *testing.T) {
		assert.Error(t, r.AddCharge("", decimal.NewFromInt(10)))
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		assert.Error(t, r.AddCharge("fuel", decimal.Zero))
		assert.Error(t, r.AddCharge("fuel", decimal.NewFromInt(-5)))
	})
}

func TestRentalComplete(t *testing.T) {
	t.Run("On-time return charges base cost only", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
		total, err := r.Complete(date(2024, 6, 4))
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(600).Equal(total), "got %s", total)
		assert.Equal(t, RentalStatusCompleted, r.Status)
		require.NotNil(t, r.ActualReturnDate)
		assert.Equal(t, date(2024, 6, 4), *r.ActualReturnDate)
		assert.Empty(t, r.AdditionalCharges)
	})

	t.Run("Late return adds the late fee once", func(t *testing.T) {
		// 4 days * 150 = 600 base, 2 days late * 150 * 1.5 = 450 fee
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
		total, err := r.Complete(date(2024, 6, 6))
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(1050).Equal(total), "got %s", total)
		fee, ok := r.AdditionalCharges[LateFeeChargeDescription]
		require.True(t, ok)
		assert.True(t, decimal.NewFromInt(450).Equal(fee), "got %s", fee)
	})

	t.Run("Existing charges are summed with the late fee", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
		require.NoError(t, r.AddCharge("cleaning", decimal.NewFromInt(50)))

		total, err := r.Complete(date(2024, 6, 6))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(1100).Equal(total), "got %s", total)
	})

	t.Run("Releases the vehicle", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
		r.Vehicle.ChangeStatus(VehicleStatusRented)

		_, err := r.Complete(date(2024, 6, 4))
		require.NoError(t, err)
		assert.Equal(t, VehicleStatusAvailable, r.Vehicle.Status)
	})

	t.Run("Second complete fails and state is untouched", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
		total, err := r.Complete(date(2024, 6, 4))
		require.NoError(t, err)

		_, err = r.Complete(date(2024, 6, 10))
		assert.ErrorIs(t, err, ErrRentalNotActive)
		assert.Equal(t, RentalStatusCompleted, r.Status)
		assert.Equal(t, date(2024, 6, 4), *r.ActualReturnDate)
		assert.True(t, total.Equal(*r.TotalCost))
	})

	t.Run("Complete after cancel fails", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
		require.NoError(t, r.Cancel())

		_, err := r.Complete(date(2024, 6, 4))
		assert.ErrorIs(t, err, ErrRentalNotActive)
		assert.Equal(t, RentalStatusCancelled, r.Status)
		assert.Nil(t, r.TotalCost)
	})

	t.Run("Zero return date", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
		_, err := r.Complete(time.Time{})
		assert.Error(t, err)
		assert.Equal(t, RentalStatusActive, r.Status)
	})

	t.Run("Total cost is immutable after completion", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
		total, err := r.Complete(date(2024, 6, 4))
		require.NoError(t, err)

		// A stray charge after completion must not rewrite the settled total.
		require.NoError(t, r.AddCharge("parking", decimal.NewFromInt(30)))
		assert.True(t, total.Equal(*r.TotalCost))
	})
}

func TestRentalCancel(t *testing.T) {
	t.Run("Active rental cancels and releases vehicle", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
		r.Vehicle.ChangeStatus(VehicleStatusRented)

		require.NoError(t, r.Cancel())
		assert.Equal(t, RentalStatusCancelled, r.Status)
		assert.Equal(t, VehicleStatusAvailable, r.Vehicle.Status)
	})

	t.Run("Cancel after complete fails", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
		_, err := r.Complete(date(2024, 6, 4))
		require.NoError(t, err)

		err = r.Cancel()
		assert.ErrorIs(t, err, ErrRentalAlreadyClosed)
		assert.Equal(t, RentalStatusCompleted, r.Status)
		assert.NotNil(t, r.TotalCost)
	})

	t.Run("Second cancel fails", func(t *testing.T) {
		r := activeRental(t, date(2024, 6, 1), date(2024, 6, 4), 150)
		require.NoError(t, r.Cancel())
		assert.ErrorIs(t, r.Cancel(), ErrRentalAlreadyClosed)
	})
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date(2024, 6, 1), date(2024, 6, 1)))
	assert.Equal(t, 3, DaysBetween(date(2024, 6, 1), date(2024, 6, 4)))
	assert.Equal(t, -3, DaysBetween(date(2024, 6, 4), date(2024, 6, 1)))
	// Date components only: wall-clock time of day never shifts the count.
	assert.Equal(t, 1, DaysBetween(
		time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 6, 2, 0, 1, 0, 0, time.UTC),
	))
}
