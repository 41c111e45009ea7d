package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"vehicle-rental-backend/internal/config"
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/jobs"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/registry"
	"vehicle-rental-backend/internal/scheduler"
	"vehicle-rental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	watch := flag.Bool("watch", false, "Keep the overdue-rental scheduler running until interrupted")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Vehicle Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)

	// Initialize registries and the rental manager
	customers := registry.NewCustomerRegistry()
	fleet := registry.NewVehicleInventory()
	manager := service.NewRentalManager(nil)

	if err := runDemo(customers, fleet, manager); err != nil {
		logger.Error("Demo flow failed", "error", err)
		os.Exit(1)
	}

	// Initialize job runner and scheduler
	jobRunner := jobs.NewJobRunner(manager, cfg)
	sched := scheduler.NewScheduler(jobRunner)

	if !*watch {
		jobRunner.ReportOverdueRentals()
		return
	}

	sched.Start()
	defer sched.Stop()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig.String())
}

// runDemo walks one rental through its full lifecycle: registration,
// booking, late return, review, and the aggregate report.
func runDemo(customers *registry.CustomerRegistry, fleet *registry.VehicleInventory, manager *service.RentalManager) error {
	today := domain.DateOnly(time.Now())

	license, err := domain.NewDrivingLicense("DL-940233", today.AddDate(-10, 0, 0), today.AddDate(5, 0, 0), []string{"B"})
	if err != nil {
		return fmt.Errorf("build license: %w", err)
	}
	customer, err := domain.NewCustomer("CUST-001", "Anna", "Kowalska", "anna.kowalska@example.com", "+48 600 100 200", "ul. Polna 12, Poznan", license)
	if err != nil {
		return fmt.Errorf("build customer: %w", err)
	}
	if err := customers.Register(customer); err != nil {
		return err
	}
	customer.UpgradeCategory(domain.CustomerCategorySilver)

	car, err := domain.NewCar("VEH-001", "Toyota", "Corolla", 2023, "PO 12345", decimal.NewFromInt(150), domain.VehicleTypeCompact, 5, "petrol", "automatic")
	if err != nil {
		return fmt.Errorf("build car: %w", err)
	}
	van, err := domain.NewVehicle("VEH-002", "Ford", "Transit", 2021, "PO 67890", decimal.NewFromInt(240), domain.VehicleTypeVan)
	if err != nil {
		return fmt.Errorf("build van: %w", err)
	}
	for _, v := range []*domain.Vehicle{car, van} {
		if err := fleet.Add(v); err != nil {
			return err
		}
	}
	logger.Info("Fleet ready", "vehicles", fleet.Count(), "available", len(fleet.GetAvailable()))

	rental, err := manager.CreateRental(customer, car, today, today.AddDate(0, 0, 3))
	if err != nil {
		return fmt.Errorf("create rental: %w", err)
	}
	logger.Info("Rental created",
		"rental_id", rental.ID,
		"daily_rate", rental.DailyRate.String(),
		"duration_days", rental.Duration(),
		"base_cost", rental.BaseCost().String(),
	)

	// Return two days late so the demo shows the late fee.
	total, err := manager.CompleteRental(rental.ID, today.AddDate(0, 0, 5))
	if err != nil {
		return fmt.Errorf("complete rental: %w", err)
	}
	logger.Info("Rental completed", "rental_id", rental.ID, "total_cost", total.String())

	review, err := manager.AddReview(rental.ID, 5, "Clean car, smooth pickup and return.", today)
	if err != nil {
		return fmt.Errorf("add review: %w", err)
	}
	logger.Info("Review recorded", "rental_id", review.RentalID, "rating", review.Rating,
		"customer_avg", manager.GetAverageRatingForCustomer(customer.ID))

	report, err := manager.GenerateRentalReport(today.AddDate(0, -1, 0), today.AddDate(0, 1, 0))
	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	logger.Info("Rental report",
		"total_rentals", report.TotalRentals,
		"completed", report.CompletedRentals,
		"overdue", report.OverdueRentals,
		"revenue", report.TotalRevenue.String(),
		"avg_duration_days", report.AverageRentalDuration,
	)

	return nil
}
