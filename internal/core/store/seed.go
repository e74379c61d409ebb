package store

import (
	"fmt"
	"time"

	"github.com/qsafe/devicehub/internal/core/domain"
)

// demoAdmins are the console logins, one per admin role.
var demoAdmins = []struct {
	name  string
	email string
	role  domain.Role
}{
	{"Super Admin", "super@qsafe.io", domain.RoleSuperAdmin},
	{"Billing Admin", "billing@qsafe.io", domain.RoleBillingAdmin},
	{"Inventory Admin", "inventory@qsafe.io", domain.RoleInventoryAdmin},
	{"Calibration Lab Admin", "lab@qsafe.io", domain.RoleCalibrationLabAdmin},
	{"QSafe Admin", "qsafe@qsafe.io", domain.RoleQSafeAdmin},
}

// Seed loads the demo data set into an empty store: three customers, the
// admin logins, four devices, their access rights and service reminders.
// Dates are relative to the store clock so schedules stay meaningful.
// Every account gets passwordHash.
func Seed(s *Store, passwordHash string) error {
	if len(s.users) > 0 || len(s.devices) > 0 {
		return fmt.Errorf("seed: store is not empty")
	}
	today := s.Today()
	monthsAgo := func(n int) time.Time { return domain.AddMonths(today, -n) }
	daysFromNow := func(n int) *time.Time {
		t := today.AddDate(0, 0, n)
		return &t
	}

	customers := []NewUser{
		{
			Name: "John Doe", Email: "john@example.com", Company: "Acme Corp",
			Phone: "555-123-4567", NotificationEmails: "john@example.com,manager@acme.com",
		},
		{
			Name: "Jane Smith", Email: "jane@example.com", Company: "TechSolutions",
			Phone: "555-987-6543", NotificationEmails: "jane@example.com",
		},
		{
			Name: "Robert Johnson", Email: "robert@example.com", Company: "Innovate Inc",
			Phone: "555-456-7890", NotificationEmails: "robert@example.com,admin@innovate.com",
		},
	}
	for _, c := range customers {
		c.PasswordHash = passwordHash
		if _, err := s.AddUser(c); err != nil {
			return fmt.Errorf("seed user %s: %w", c.Email, err)
		}
	}
	for _, a := range demoAdmins {
		if _, err := s.AddUser(NewUser{Name: a.name, Email: a.email, AdminRole: a.role, PasswordHash: passwordHash}); err != nil {
			return fmt.Errorf("seed admin %s: %w", a.email, err)
		}
	}

	sensor := func(interval, threshold int) *domain.Configuration {
		return &domain.Configuration{
			Category: domain.CategorySensor,
			Sensor:   &domain.SensorConfig{ReportInterval: interval, Threshold: threshold},
		}
	}
	devices := []NewDevice{
		{
			ID: "DEV001", Name: "Temperature Sensor", Location: "Living Room", Status: domain.StatusOnline,
			InstalledDate: monthsAgo(8), Configuration: sensor(5, 30),
			Billing:            &domain.Billing{Type: domain.BillingRental, PaymentStatus: domain.PaymentCurrent, LastPayment: monthsAgo(1)},
			CalibrationDueDate: daysFromNow(-10), LastCalibrationDate: daysFromNow(-375),
			SerialNumber: "TS-2023-0001", Model: "QS-T100",
		},
		{
			ID: "DEV002", Name: "Smart Lock", Location: "Front Door", Status: domain.StatusOnline,
			InstalledDate: monthsAgo(14),
			Configuration: &domain.Configuration{
				Category: domain.CategoryLock,
				Lock:     &domain.LockConfig{AutoLock: true, PinRequired: true},
			},
			Billing:            &domain.Billing{Type: domain.BillingPurchase, PaymentStatus: domain.PaymentCurrent, LastPayment: monthsAgo(14)},
			CalibrationDueDate: daysFromNow(15), LastCalibrationDate: daysFromNow(-350),
			SerialNumber: "SL-2022-0417", Model: "QS-L200",
		},
		{
			ID: "DEV003", Name: "Security Camera", Location: "Backyard", Status: domain.StatusOffline,
			InstalledDate: monthsAgo(3),
			Configuration: &domain.Configuration{
				Category: domain.CategoryCamera,
				Camera:   &domain.CameraConfig{Resolution: "1080p", MotionDetection: true},
			},
			Billing:            &domain.Billing{Type: domain.BillingRental, PaymentStatus: domain.PaymentOverdue, LastPayment: monthsAgo(3)},
			CalibrationDueDate: daysFromNow(150),
			SerialNumber:       "SC-2024-0093", Model: "QS-C300",
		},
		{
			ID: "DEV004", Name: "Humidity Sensor", Location: "Bathroom", Status: domain.StatusOnline,
			InstalledDate: monthsAgo(6), Configuration: sensor(10, 70),
			Billing:      &domain.Billing{Type: domain.BillingRental, PaymentStatus: domain.PaymentCurrent, LastPayment: monthsAgo(0)},
			SerialNumber: "HS-2024-0210", Model: "QS-H110",
		},
	}
	if _, err := s.AddDevices(devices); err != nil {
		return fmt.Errorf("seed devices: %w", err)
	}

	grants := []struct {
		userID   int
		deviceID string
	}{
		{1, "DEV001"}, {1, "DEV002"},
		{2, "DEV002"}, {2, "DEV003"},
		{3, "DEV001"}, {3, "DEV004"},
	}
	for _, g := range grants {
		if _, err := s.ToggleAccess(g.userID, g.deviceID); err != nil {
			return fmt.Errorf("seed access %d/%s: %w", g.userID, g.deviceID, err)
		}
	}

	reminders := []NewReminder{
		{UserID: 1, ServiceType: "Annual Inspection", SiteLocation: "Acme Corp HQ", LastServiceDate: monthsAgo(13), ReminderEnabled: true, ReminderMonths: 12},
		{UserID: 2, ServiceType: "Filter Replacement", SiteLocation: "TechSolutions Lab", LastServiceDate: monthsAgo(3), ReminderEnabled: true, ReminderMonths: 3},
		{UserID: 3, ServiceType: "Battery Check", SiteLocation: "Innovate Inc Warehouse", LastServiceDate: monthsAgo(1), ReminderEnabled: false, ReminderMonths: 6},
	}
	for _, r := range reminders {
		if _, err := s.AddServiceReminder(r); err != nil {
			return fmt.Errorf("seed reminder %s: %w", r.ServiceType, err)
		}
	}
	return nil
}
