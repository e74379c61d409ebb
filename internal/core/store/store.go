// Package store holds the entity collections and the mutation commands that
// keep them consistent. A *Store is a plain value owned by one caller at a
// time; Shared serializes access when several goroutines need it.
package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qsafe/devicehub/internal/core/domain"
)

type accessKey struct {
	userID   int
	deviceID string
}

// Store is the in-memory entity store.
type Store struct {
	now func() time.Time

	users     map[int]*domain.User
	userOrder []int

	devices     map[string]*domain.Device
	deviceOrder []string

	access      map[accessKey]*domain.AccessRight
	accessOrder []accessKey

	reminders     map[string]*domain.ServiceReminder
	reminderOrder []string

	blocked map[string]struct{}
}

// New returns an empty store. now supplies "today"; nil means time.Now.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:       now,
		users:     make(map[int]*domain.User),
		devices:   make(map[string]*domain.Device),
		access:    make(map[accessKey]*domain.AccessRight),
		reminders: make(map[string]*domain.ServiceReminder),
		blocked:   make(map[string]struct{}),
	}
}

// Today is the store clock truncated to a calendar date.
func (s *Store) Today() time.Time {
	return domain.Day(s.now())
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// NewUser carries the fields of an account to create.
type NewUser struct {
	Name               string
	Email              string
	Kind               string
	Company            string
	Phone              string
	NotificationEmails string
	AdminRole          domain.Role
	PasswordHash       string
}

// AddUser assigns the next id (max existing + 1) and stores the account.
// Emails are unique, compared case-insensitively.
func (s *Store) AddUser(in NewUser) (domain.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.User{}, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	email := domain.NormalizeEmail(in.Email)
	if email == "" {
		return domain.User{}, &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if _, ok := s.userByEmail(email); ok {
		return domain.User{}, fmt.Errorf("add user %s: %w", email, domain.ErrUserExists)
	}
	if in.AdminRole != domain.RoleNone && !in.AdminRole.Valid() {
		return domain.User{}, &domain.ValidationError{Field: "admin_role", Reason: "unknown role"}
	}

	kind := in.Kind
	switch {
	case strings.EqualFold(kind, domain.KindAdmin):
		kind = domain.KindAdmin
	case in.AdminRole != domain.RoleNone:
		kind = domain.KindAdmin
	default:
		kind = domain.KindUser
	}

	now := s.now().UTC()
	u := &domain.User{
		ID:                 s.nextUserID(),
		Name:               strings.TrimSpace(in.Name),
		Email:              email,
		Kind:               kind,
		Company:            strings.TrimSpace(in.Company),
		Phone:              strings.TrimSpace(in.Phone),
		NotificationEmails: strings.TrimSpace(in.NotificationEmails),
		AdminRole:          in.AdminRole,
		PasswordHash:       in.PasswordHash,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	return *u, nil
}

// UpdateUser applies a profile patch.
func (s *Store) UpdateUser(id int, p domain.UserPatch) (domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.UserNotFound(id)
	}
	next := *u
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return domain.User{}, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
		}
		next.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		email := domain.NormalizeEmail(*p.Email)
		if email == "" {
			return domain.User{}, &domain.ValidationError{Field: "email", Reason: "must not be empty"}
		}
		if other, ok := s.userByEmail(email); ok && other.ID != id {
			return domain.User{}, fmt.Errorf("update user %d: %w", id, domain.ErrUserExists)
		}
		next.Email = email
	}
	if p.Company != nil {
		next.Company = strings.TrimSpace(*p.Company)
	}
	if p.Phone != nil {
		next.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.NotificationEmails != nil {
		next.NotificationEmails = strings.TrimSpace(*p.NotificationEmails)
	}
	next.UpdatedAt = s.now().UTC()
	*u = next
	return next, nil
}

// SetAdminRole changes a user's admin role; RoleNone demotes to a regular user.
func (s *Store) SetAdminRole(id int, r domain.Role) (domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.UserNotFound(id)
	}
	if r != domain.RoleNone && !r.Valid() {
		return domain.User{}, &domain.ValidationError{Field: "role", Reason: "unknown role"}
	}
	u.AdminRole = r
	if r == domain.RoleNone {
		u.Kind = domain.KindUser
	} else {
		u.Kind = domain.KindAdmin
	}
	u.UpdatedAt = s.now().UTC()
	return *u, nil
}

// User looks up one account.
func (s *Store) User(id int) (domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.UserNotFound(id)
	}
	return *u, nil
}

// UserByEmail looks up an account by its normalized email.
func (s *Store) UserByEmail(email string) (domain.User, bool) {
	u, ok := s.userByEmail(domain.NormalizeEmail(email))
	if !ok {
		return domain.User{}, false
	}
	return *u, true
}

// Users lists accounts in creation order, filtered by search term.
func (s *Store) Users(search string) []domain.User {
	out := make([]domain.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		u := s.users[id]
		if u.Matches(search) {
			out = append(out, *u)
		}
	}
	return out
}

func (s *Store) userByEmail(email string) (*domain.User, bool) {
	for _, id := range s.userOrder {
		if u := s.users[id]; u.Email == email {
			return u, true
		}
	}
	return nil, false
}

func (s *Store) nextUserID() int {
	max := 0
	for id := range s.users {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// ---------------------------------------------------------------------------
// Devices
// ---------------------------------------------------------------------------

// NewDevice carries the fields of a device to register. Zero values are
// filled with defaults.
type NewDevice struct {
	ID                  string
	Name                string
	Location            string
	Status              domain.DeviceStatus
	DeviceType          domain.DeviceType
	InstalledDate       time.Time
	Category            domain.Category
	Configuration       *domain.Configuration
	Billing             *domain.Billing
	CalibrationDueDate  *time.Time
	LastCalibrationDate *time.Time
	SerialNumber        string
	Model               string
}

// AddDevice registers a device. A missing id becomes DEV + a zero-padded
// sequence; the configuration defaults to the category's factory settings and
// the billing record to a current rental paid today.
func (s *Store) AddDevice(in NewDevice) (domain.Device, error) {
	d, err := s.buildDevice(in)
	if err != nil {
		return domain.Device{}, err
	}
	s.insertDevice(d)
	return d.Clone(), nil
}

func (s *Store) buildDevice(in NewDevice) (domain.Device, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Device{}, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		return domain.Device{}, &domain.ValidationError{Field: "location", Reason: "must not be empty"}
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = s.nextDeviceID()
	} else if _, exists := s.devices[id]; exists {
		return domain.Device{}, fmt.Errorf("add device %s: %w", id, domain.ErrDeviceExists)
	}

	today := s.Today()

	var cfg domain.Configuration
	if in.Configuration != nil {
		cfg = *in.Configuration
		if err := cfg.Validate(); err != nil {
			return domain.Device{}, err
		}
	} else {
		category := in.Category
		if category == "" {
			category = domain.CategoryForName(name)
		}
		cfg = domain.DefaultConfiguration(category)
	}

	billing := domain.Billing{Type: domain.BillingRental, PaymentStatus: domain.PaymentCurrent, LastPayment: today}
	if in.Billing != nil {
		billing = *in.Billing
		if billing.Type == "" {
			billing.Type = domain.BillingRental
		}
		if billing.PaymentStatus == "" {
			billing.PaymentStatus = domain.PaymentCurrent
		}
	}

	deviceType := in.DeviceType
	if deviceType == "" {
		deviceType = domain.DeviceTypeFor(billing.Type)
	}
	status := in.Status
	if status == "" {
		status = domain.StatusOffline
	}
	installed := in.InstalledDate
	if installed.IsZero() {
		installed = today
	}

	d := domain.Device{
		ID:                  id,
		Name:                name,
		Location:            location,
		Status:              status,
		DeviceType:          deviceType,
		InstalledDate:       domain.Day(installed),
		Configuration:       cfg,
		Billing:             &billing,
		CalibrationDueDate:  in.CalibrationDueDate,
		LastCalibrationDate: in.LastCalibrationDate,
		SerialNumber:        strings.TrimSpace(in.SerialNumber),
		Model:               strings.TrimSpace(in.Model),
	}
	return d.Clone(), nil
}

func (s *Store) insertDevice(d domain.Device) {
	s.devices[d.ID] = &d
	s.deviceOrder = append(s.deviceOrder, d.ID)
}

// AddDevices registers a batch all-or-nothing: if any entry fails nothing is
// stored.
func (s *Store) AddDevices(in []NewDevice) ([]domain.Device, error) {
	staged := make([]domain.Device, 0, len(in))
	for i, nd := range in {
		d, err := s.buildDevice(nd)
		if err != nil {
			for _, done := range staged {
				s.removeDevice(done.ID)
			}
			return nil, fmt.Errorf("device %d: %w", i+1, err)
		}
		s.insertDevice(d)
		staged = append(staged, d)
	}
	out := make([]domain.Device, len(staged))
	for i, d := range staged {
		out[i] = d.Clone()
	}
	return out, nil
}

func (s *Store) removeDevice(id string) {
	delete(s.devices, id)
	for i, o := range s.deviceOrder {
		if o == id {
			s.deviceOrder = append(s.deviceOrder[:i], s.deviceOrder[i+1:]...)
			return
		}
	}
}

// HasDevice reports whether the id is registered.
func (s *Store) HasDevice(id string) bool {
	_, ok := s.devices[id]
	return ok
}

// Device looks up one device.
func (s *Store) Device(id string) (domain.Device, error) {
	d, ok := s.devices[id]
	if !ok {
		return domain.Device{}, domain.DeviceNotFound(id)
	}
	return d.Clone(), nil
}

// Devices lists devices in registration order, filtered by search term.
func (s *Store) Devices(search string) []domain.Device {
	out := make([]domain.Device, 0, len(s.deviceOrder))
	for _, id := range s.deviceOrder {
		d := s.devices[id]
		if d.Matches(search) {
			out = append(out, d.Clone())
		}
	}
	return out
}

// UpdateDeviceConfig merges the patch into the device configuration; keys the
// patch leaves nil are untouched.
func (s *Store) UpdateDeviceConfig(id string, p domain.ConfigPatch) (domain.Device, error) {
	d, ok := s.devices[id]
	if !ok {
		return domain.Device{}, domain.DeviceNotFound(id)
	}
	cfg, err := d.Configuration.Apply(p)
	if err != nil {
		return domain.Device{}, err
	}
	d.Configuration = cfg
	return d.Clone(), nil
}

// SetPaymentStatus overwrites the externally managed payment flag.
func (s *Store) SetPaymentStatus(id string, st domain.PaymentStatus) (domain.Device, error) {
	d, ok := s.devices[id]
	if !ok {
		return domain.Device{}, domain.DeviceNotFound(id)
	}
	if st != domain.PaymentCurrent && st != domain.PaymentOverdue {
		return domain.Device{}, &domain.ValidationError{Field: "payment_status", Reason: "must be Current or Overdue"}
	}
	if d.Billing == nil {
		d.Billing = &domain.Billing{Type: domain.BillingRental}
	}
	d.Billing.PaymentStatus = st
	return d.Clone(), nil
}

// RecordPayment sets lastPayment to today and the status to Current.
func (s *Store) RecordPayment(id string) (domain.Device, error) {
	d, ok := s.devices[id]
	if !ok {
		return domain.Device{}, domain.DeviceNotFound(id)
	}
	paid := domain.RecordPayment(*d, s.Today())
	*d = paid
	return paid.Clone(), nil
}

// RecordCalibration stores a calibration performed on date and schedules the
// next one intervalMonths later.
func (s *Store) RecordCalibration(id string, date time.Time, intervalMonths int) (domain.Device, error) {
	d, ok := s.devices[id]
	if !ok {
		return domain.Device{}, domain.DeviceNotFound(id)
	}
	if intervalMonths < 1 || intervalMonths > 60 {
		return domain.Device{}, &domain.ValidationError{Field: "interval_months", Reason: "must be between 1 and 60"}
	}
	date = domain.Day(date)
	if date.After(s.Today()) {
		return domain.Device{}, &domain.ValidationError{Field: "date", Reason: "must not be in the future"}
	}
	due := domain.AddMonths(date, intervalMonths)
	d.LastCalibrationDate = &date
	d.CalibrationDueDate = &due
	return d.Clone(), nil
}

// ToggleDeviceBlock flips membership in the billing block set and reports the
// new state.
func (s *Store) ToggleDeviceBlock(id string) (blocked bool, err error) {
	if _, ok := s.devices[id]; !ok {
		return false, domain.DeviceNotFound(id)
	}
	if _, ok := s.blocked[id]; ok {
		delete(s.blocked, id)
		return false, nil
	}
	s.blocked[id] = struct{}{}
	return true, nil
}

// IsBlocked reports billing suspension for a device.
func (s *Store) IsBlocked(id string) bool {
	_, ok := s.blocked[id]
	return ok
}

// BlockedDevices lists blocked device ids in sorted order.
func (s *Store) BlockedDevices() []string {
	out := make([]string, 0, len(s.blocked))
	for id := range s.blocked {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *Store) nextDeviceID() string {
	for n := len(s.devices) + 1; ; n++ {
		id := fmt.Sprintf("DEV%03d", n)
		if _, taken := s.devices[id]; !taken {
			return id
		}
	}
}

// ---------------------------------------------------------------------------
// Access
// ---------------------------------------------------------------------------

// ToggleAccess flips the granted flag of an existing right, or creates one
// granted today, due in one month, with the device's current type.
// Both ids must exist. Other users' rights on the device are unaffected.
func (s *Store) ToggleAccess(userID int, deviceID string) (domain.AccessRight, error) {
	if _, ok := s.users[userID]; !ok {
		return domain.AccessRight{}, domain.UserNotFound(userID)
	}
	d, ok := s.devices[deviceID]
	if !ok {
		return domain.AccessRight{}, domain.DeviceNotFound(deviceID)
	}

	key := accessKey{userID: userID, deviceID: deviceID}
	if a, ok := s.access[key]; ok {
		a.Granted = !a.Granted
		return *a, nil
	}

	today := s.Today()
	due := domain.AddMonths(today, 1)
	a := &domain.AccessRight{
		UserID:       userID,
		DeviceID:     deviceID,
		Granted:      true,
		AssignedDate: &today,
		DueDate:      &due,
		DeviceType:   d.DeviceType,
	}
	s.access[key] = a
	s.accessOrder = append(s.accessOrder, key)
	return *a, nil
}

// HasAccess is true iff a granted right exists for the pair.
func (s *Store) HasAccess(userID int, deviceID string) bool {
	a, ok := s.access[accessKey{userID: userID, deviceID: deviceID}]
	return ok && a.Granted
}

// CanOperate combines the functional grant with the billing block.
func (s *Store) CanOperate(userID int, deviceID string) bool {
	return s.HasAccess(userID, deviceID) && !s.IsBlocked(deviceID)
}

// AccessRights lists every right in insertion order.
func (s *Store) AccessRights() []domain.AccessRight {
	out := make([]domain.AccessRight, 0, len(s.accessOrder))
	for _, k := range s.accessOrder {
		out = append(out, *s.access[k])
	}
	return out
}

// Assigned reports whether any user holds a granted right on the device.
func (s *Store) Assigned(deviceID string) bool {
	for _, k := range s.accessOrder {
		if k.deviceID == deviceID && s.access[k].Granted {
			return true
		}
	}
	return false
}

// UnassignedDevices lists devices nobody holds a granted right on.
func (s *Store) UnassignedDevices() []domain.Device {
	var out []domain.Device
	for _, id := range s.deviceOrder {
		if !s.Assigned(id) {
			out = append(out, s.devices[id].Clone())
		}
	}
	return out
}

// DevicesForUser joins the user's granted rights with the device store.
// Rights pointing at unknown devices are skipped.
func (s *Store) DevicesForUser(userID int) []domain.DeviceView {
	today := s.Today()
	var out []domain.DeviceView
	for _, k := range s.accessOrder {
		if k.userID != userID {
			continue
		}
		a := s.access[k]
		if !a.Granted {
			continue
		}
		d, ok := s.devices[k.deviceID]
		if !ok {
			continue
		}
		out = append(out, a.View(*d, today, s.IsBlocked(d.ID)))
	}
	return out
}

// OwnerOf returns the user of the first granted right on the device.
func (s *Store) OwnerOf(deviceID string) (domain.User, bool) {
	for _, k := range s.accessOrder {
		if k.deviceID != deviceID || !s.access[k].Granted {
			continue
		}
		if u, ok := s.users[k.userID]; ok {
			return *u, true
		}
		return domain.User{}, false
	}
	return domain.User{}, false
}

// ---------------------------------------------------------------------------
// Service reminders
// ---------------------------------------------------------------------------

// NewReminder carries the fields of a reminder to create.
type NewReminder struct {
	UserID          int
	ServiceType     string
	SiteLocation    string
	LastServiceDate time.Time
	ReminderEnabled bool
	ReminderMonths  int
}

// AddServiceReminder stores a reminder with a fresh id and a due date of
// lastServiceDate + reminderMonths.
func (s *Store) AddServiceReminder(in NewReminder) (domain.ServiceReminder, error) {
	if _, ok := s.users[in.UserID]; !ok {
		return domain.ServiceReminder{}, domain.UserNotFound(in.UserID)
	}
	if strings.TrimSpace(in.ServiceType) == "" {
		return domain.ServiceReminder{}, &domain.ValidationError{Field: "service_type", Reason: "must not be empty"}
	}
	if in.LastServiceDate.IsZero() {
		return domain.ServiceReminder{}, &domain.ValidationError{Field: "last_service_date", Reason: "is required"}
	}
	r := domain.ServiceReminder{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		ServiceType:     strings.TrimSpace(in.ServiceType),
		SiteLocation:    strings.TrimSpace(in.SiteLocation),
		LastServiceDate: domain.Day(in.LastServiceDate),
	}
	r, err := r.Reschedule(in.ReminderMonths, in.ReminderEnabled)
	if err != nil {
		return domain.ServiceReminder{}, err
	}
	s.putReminder(r)
	return r, nil
}

// UpdateServiceReminder applies a patch; see domain.ServiceReminder.Apply.
func (s *Store) UpdateServiceReminder(id string, p domain.ReminderPatch) (domain.ServiceReminder, error) {
	r, ok := s.reminders[id]
	if !ok {
		return domain.ServiceReminder{}, domain.ReminderNotFound(id)
	}
	next, err := r.Apply(p)
	if err != nil {
		return domain.ServiceReminder{}, err
	}
	*r = next
	return next, nil
}

// UpdateReminder is the edit dialog's command: new frequency plus enabled flag.
func (s *Store) UpdateReminder(id string, months int, enabled bool) (domain.ServiceReminder, error) {
	return s.UpdateServiceReminder(id, domain.ReminderPatch{ReminderMonths: &months, ReminderEnabled: &enabled})
}

// Reminder looks up one reminder.
func (s *Store) Reminder(id string) (domain.ServiceReminder, error) {
	r, ok := s.reminders[id]
	if !ok {
		return domain.ServiceReminder{}, domain.ReminderNotFound(id)
	}
	return *r, nil
}

// Reminders lists reminders in creation order.
func (s *Store) Reminders() []domain.ServiceReminder {
	out := make([]domain.ServiceReminder, 0, len(s.reminderOrder))
	for _, id := range s.reminderOrder {
		out = append(out, *s.reminders[id])
	}
	return out
}

func (s *Store) putReminder(r domain.ServiceReminder) {
	if _, exists := s.reminders[r.ID]; !exists {
		s.reminderOrder = append(s.reminderOrder, r.ID)
	}
	s.reminders[r.ID] = &r
}
