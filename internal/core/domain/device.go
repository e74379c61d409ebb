package domain

import (
	"strings"
	"time"
)

// DeviceStatus is the connectivity state reported for a device.
type DeviceStatus string

const (
	StatusOnline  DeviceStatus = "Online"
	StatusOffline DeviceStatus = "Offline"
)

// DeviceType says whether a device was sold or is rented out.
type DeviceType string

const (
	DeviceTypeSales  DeviceType = "Sales"
	DeviceTypeRental DeviceType = "Rental"
)

// BillingType is the contract recorded on the billing sub-record.
type BillingType string

const (
	BillingRental   BillingType = "Rental"
	BillingPurchase BillingType = "Purchase"
)

// PaymentStatus is set externally; it is never derived from dates.
type PaymentStatus string

const (
	PaymentCurrent PaymentStatus = "Current"
	PaymentOverdue PaymentStatus = "Overdue"
	PaymentNA      PaymentStatus = "N/A"
)

// Billing is the payment sub-record of a device.
type Billing struct {
	Type          BillingType
	PaymentStatus PaymentStatus
	LastPayment   time.Time
}

// Device is an inventory entry.
type Device struct {
	ID                  string
	Name                string
	Location            string
	Status              DeviceStatus
	DeviceType          DeviceType
	InstalledDate       time.Time
	Configuration       Configuration
	Billing             *Billing
	CalibrationDueDate  *time.Time
	LastCalibrationDate *time.Time
	SerialNumber        string
	Model               string
}

// DeviceView is a device as seen through one user's access right.
type DeviceView struct {
	Device       Device
	DeviceType   DeviceType
	AssignedDate time.Time
	DueDate      time.Time
	Blocked      bool
}

// ParseDeviceStatus is case-insensitive; empty yields Offline.
func ParseDeviceStatus(s string) (DeviceStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "offline":
		return StatusOffline, nil
	case "online":
		return StatusOnline, nil
	}
	return "", invalid("status", "must be Online or Offline")
}

// ParseDeviceType is case-insensitive; empty is returned as "".
func ParseDeviceType(s string) (DeviceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "sales":
		return DeviceTypeSales, nil
	case "rental":
		return DeviceTypeRental, nil
	}
	return "", invalid("device_type", "must be Sales or Rental")
}

// ParseBillingType is case-insensitive; empty is returned as "".
func ParseBillingType(s string) (BillingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "rental":
		return BillingRental, nil
	case "purchase":
		return BillingPurchase, nil
	}
	return "", invalid("billing.type", "must be Rental or Purchase")
}

// ParsePaymentStatus accepts Current or Overdue.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "current":
		return PaymentCurrent, nil
	case "overdue":
		return PaymentOverdue, nil
	}
	return "", invalid("payment_status", "must be Current or Overdue")
}

// DeviceTypeFor maps a billing contract to the matching device type.
func DeviceTypeFor(b BillingType) DeviceType {
	if b == BillingPurchase {
		return DeviceTypeSales
	}
	return DeviceTypeRental
}

// Matches reports whether the device name, location or id contains term,
// ignoring case. An empty term matches everything.
func (d *Device) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range []string{d.Name, d.Location, d.ID, d.Model, d.SerialNumber} {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never alias store state.
func (d Device) Clone() Device {
	d.Configuration = d.Configuration.clone()
	if d.Billing != nil {
		b := *d.Billing
		d.Billing = &b
	}
	d.CalibrationDueDate = cloneTime(d.CalibrationDueDate)
	d.LastCalibrationDate = cloneTime(d.LastCalibrationDate)
	return d
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
