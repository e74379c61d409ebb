package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePermissions(t *testing.T) {
	all := Permissions{Users: true, Devices: true, Access: true, Billing: true, Calibration: true, Service: true}
	tests := []struct {
		role Role
		want Permissions
	}{
		{RoleSuperAdmin, all},
		{RoleBillingAdmin, Permissions{Billing: true}},
		{RoleInventoryAdmin, Permissions{Users: true, Devices: true, Access: true}},
		{RoleCalibrationLabAdmin, Permissions{Calibration: true}},
		{RoleQSafeAdmin, Permissions{Service: true}},
		{RoleNone, Permissions{}},
		{Role("owner"), Permissions{}},
	}
	for _, tc := range tests {
		t.Run(string(tc.role), func(t *testing.T) {
			assert.Equal(t, tc.want, ResolvePermissions(tc.role))
		})
	}
}

func TestResolvePermissions_SuperAdminDominates(t *testing.T) {
	features := []Feature{FeatureUsers, FeatureDevices, FeatureAccess, FeatureBilling, FeatureCalibration, FeatureService}
	super := ResolvePermissions(RoleSuperAdmin)
	for _, r := range Roles() {
		p := ResolvePermissions(r)
		for _, f := range features {
			if p.Allows(f) {
				assert.True(t, super.Allows(f), "%s grants %s but super_admin does not", r, f)
			}
		}
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleBillingAdmin, ParseRole(" Billing_Admin "))
	assert.Equal(t, RoleNone, ParseRole("admin"))
	assert.Equal(t, RoleNone, ParseRole(""))
}

func TestLegacyAdminType(t *testing.T) {
	assert.Equal(t, RoleSuperAdmin, RoleForAdminType(AdminTypeFull))
	assert.Equal(t, RoleBillingAdmin, RoleForAdminType("BILLING"))
	assert.Equal(t, RoleNone, RoleForAdminType(AdminTypeNone))

	assert.Equal(t, LegacyAccess{IsFullAccess: true, IsBillingAccess: true}, LegacyAccessFor(RoleSuperAdmin))
	assert.Equal(t, LegacyAccess{IsBillingAccess: true}, LegacyAccessFor(RoleBillingAdmin))
	assert.Equal(t, LegacyAccess{}, LegacyAccessFor(RoleQSafeAdmin))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		in   time.Time
		n    int
		want string
	}{
		{date(2026, time.January, 31), 1, "2026-02-28"},
		{date(2028, time.January, 31), 1, "2028-02-29"},
		{date(2026, time.March, 15), 6, "2026-09-15"},
		{date(2026, time.November, 30), 3, "2027-02-28"},
		{date(2026, time.March, 31), -1, "2026-02-28"},
		{time.Date(2026, time.May, 5, 23, 59, 0, 0, time.UTC), 0, "2026-05-05"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatDate(AddMonths(tc.in, tc.n)), "%s + %d", FormatDate(tc.in), tc.n)
	}
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 0, MonthsBetween(date(2026, time.June, 1), date(2026, time.June, 30)))
	assert.Equal(t, 1, MonthsBetween(date(2026, time.June, 30), date(2026, time.July, 1)))
	assert.Equal(t, 14, MonthsBetween(date(2025, time.April, 10), date(2026, time.June, 2)))
	assert.Equal(t, -2, MonthsBetween(date(2026, time.June, 1), date(2026, time.April, 1)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("date", "2026-02-03")
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.February, 3), d)

	_, err = ParseDate("date", "03/02/2026")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "date", verr.Field)
}

func TestDueAmount(t *testing.T) {
	rate := decimal.RequireFromString("29.99")
	today := date(2026, time.June, 15)

	dev003 := Device{ID: "DEV003", DeviceType: DeviceTypeRental, InstalledDate: AddMonths(today, -3)}
	assert.Equal(t, "119.96", DueAmount(dev003, rate, today).StringFixed(2))

	sold := Device{DeviceType: DeviceTypeSales, InstalledDate: AddMonths(today, -3)}
	assert.True(t, DueAmount(sold, rate, today).IsZero())

	undated := Device{DeviceType: DeviceTypeRental}
	assert.True(t, DueAmount(undated, rate, today).IsZero())

	future := Device{DeviceType: DeviceTypeRental, InstalledDate: today.AddDate(0, 0, 3)}
	assert.True(t, DueAmount(future, rate, today).IsZero())

	sameDay := Device{DeviceType: DeviceTypeRental, InstalledDate: today}
	assert.Equal(t, "29.99", DueAmount(sameDay, rate, today).StringFixed(2))
}

func TestDueAmount_NonDecreasing(t *testing.T) {
	rate := decimal.RequireFromString("29.99")
	d := Device{DeviceType: DeviceTypeRental, InstalledDate: date(2025, time.January, 31)}

	prev := decimal.Zero
	for day := date(2024, time.December, 1); day.Before(date(2027, time.January, 1)); day = day.AddDate(0, 0, 1) {
		got := DueAmount(d, rate, day)
		require.True(t, got.GreaterThanOrEqual(prev), "due amount dropped on %s", FormatDate(day))
		prev = got
	}
}

func TestScheduleStatusAt_Partition(t *testing.T) {
	today := date(2026, time.June, 15)
	counts := map[ScheduleStatus]int{}
	for due := today.AddDate(0, 0, -40); due.Before(today.AddDate(0, 0, 80)); due = due.AddDate(0, 0, 1) {
		counts[ScheduleStatusAt(due, today)]++
	}
	assert.Equal(t, 40, counts[ScheduleOverdue])
	assert.Equal(t, 30, counts[ScheduleDueSoon]) // Jun 15 .. Jul 14
	assert.Equal(t, 50, counts[ScheduleUpToDate])

	assert.Equal(t, ScheduleOverdue, ScheduleStatusAt(today.AddDate(0, 0, -1), today))
	assert.Equal(t, ScheduleDueSoon, ScheduleStatusAt(today, today))
	assert.Equal(t, ScheduleUpToDate, ScheduleStatusAt(AddMonths(today, 1), today))
}

func TestScheduleTally(t *testing.T) {
	today := date(2026, time.June, 15)
	overdue, soon, later := today.AddDate(0, 0, -1), today.AddDate(0, 0, 10), today.AddDate(0, 3, 0)
	devices := []Device{
		{CalibrationDueDate: &overdue},
		{CalibrationDueDate: &soon},
		{CalibrationDueDate: &later},
		{CalibrationDueDate: &later},
		{},
	}
	var tally ScheduleTally
	for _, d := range devices {
		status, ok := CalibrationStatus(d, today)
		tally.Add(status, ok)
	}
	assert.Equal(t, ScheduleTally{Total: 5, Overdue: 1, DueSoon: 1, UpToDate: 2, Undated: 1}, tally)
	assert.Equal(t, tally.Total-tally.Undated, tally.Overdue+tally.DueSoon+tally.UpToDate)
}

func TestConfiguration_Apply(t *testing.T) {
	sensor := DefaultConfiguration(CategorySensor)
	interval := 15

	got, err := sensor.Apply(ConfigPatch{ReportInterval: &interval})
	require.NoError(t, err)
	assert.Equal(t, 15, got.Sensor.ReportInterval)
	assert.Equal(t, 30, got.Sensor.Threshold)
	assert.Equal(t, 5, sensor.Sensor.ReportInterval, "receiver must not be mutated")

	res := "8K"
	camera := DefaultConfiguration(CategoryCamera)
	_, err = camera.Apply(ConfigPatch{Resolution: &res})
	assert.True(t, errors.Is(err, ErrValidation))

	pin := false
	_, err = sensor.Apply(ConfigPatch{PinRequired: &pin})
	assert.True(t, errors.Is(err, ErrValidation))

	tooHigh := 101
	_, err = sensor.Apply(ConfigPatch{Threshold: &tooHigh})
	assert.True(t, errors.Is(err, ErrValidation))

	generic := DefaultConfiguration(CategoryGeneric)
	same, err := generic.Apply(ConfigPatch{})
	require.NoError(t, err)
	assert.Equal(t, generic, same)
}

func TestConfiguration_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfiguration(CategoryLock).Validate())
	bad := Configuration{Category: CategoryLock, Lock: &LockConfig{}, Camera: &CameraConfig{Resolution: "720p"}}
	assert.Error(t, bad.Validate())
	assert.Error(t, Configuration{Category: "drone"}.Validate())
}

func TestCategoryForName(t *testing.T) {
	assert.Equal(t, CategorySensor, CategoryForName("Humidity Sensor"))
	assert.Equal(t, CategoryLock, CategoryForName("Smart LOCK"))
	assert.Equal(t, CategoryCamera, CategoryForName("Security Camera"))
	assert.Equal(t, CategoryGeneric, CategoryForName("Hub"))
}

func TestServiceReminder_Reschedule(t *testing.T) {
	r := ServiceReminder{
		LastServiceDate: date(2026, time.March, 10),
		DueDate:         date(2030, time.January, 1),
		ReminderMonths:  3,
	}

	got, err := r.Reschedule(6, true)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-10", FormatDate(got.DueDate))
	assert.True(t, got.ReminderEnabled)

	got, err = r.Reschedule(36, false)
	require.NoError(t, err)
	assert.Equal(t, "2029-03-10", FormatDate(got.DueDate))

	got, err = r.Reschedule(60, true)
	require.NoError(t, err)
	assert.Equal(t, "2031-03-10", FormatDate(got.DueDate))

	for _, months := range []int{0, 61} {
		_, err = r.Reschedule(months, true)
		assert.True(t, errors.Is(err, ErrValidation), "months %d", months)
	}
}

func TestServiceReminder_Apply(t *testing.T) {
	r := ServiceReminder{
		ServiceType:     "Inspection",
		LastServiceDate: date(2026, time.March, 10),
		DueDate:         date(2026, time.June, 10),
		ReminderMonths:  3,
		ReminderEnabled: true,
	}

	disabled := false
	got, err := r.Apply(ReminderPatch{ReminderEnabled: &disabled})
	require.NoError(t, err)
	assert.False(t, got.ReminderEnabled)
	assert.Equal(t, r.DueDate, got.DueDate)

	last := date(2026, time.May, 1)
	got, err = r.Apply(ReminderPatch{LastServiceDate: &last})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", FormatDate(got.DueDate))

	blank := "  "
	_, err = r.Apply(ReminderPatch{ServiceType: &blank})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough", "longenough"))
	assert.Error(t, ValidatePassword("short", "short"))
	assert.Error(t, ValidatePassword("longenough", "longenougH"))
}

func TestNotFoundError_Is(t *testing.T) {
	err := DeviceNotFound("DEV404")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, `device "DEV404" not found`, err.Error())
}

func TestAuditFilter_Match(t *testing.T) {
	e := AuditEvent{Kind: AuditPayment, DeviceID: "DEV001", UserID: 1}
	assert.True(t, AuditFilter{}.Match(e))
	assert.True(t, AuditFilter{Kind: AuditPayment, DeviceID: "DEV001"}.Match(e))
	assert.False(t, AuditFilter{UserID: 2}.Match(e))
	assert.False(t, AuditFilter{Kind: AuditAccessGranted}.Match(e))
}

func TestUser_NotificationList(t *testing.T) {
	u := User{NotificationEmails: "a@x.com, ,b@x.com "}
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, u.NotificationList())
}
