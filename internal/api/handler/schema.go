package handler

import (
	"time"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/importer"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// Dates travel as yyyy-mm-dd strings; timestamps as RFC 3339.

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

type meResponse struct {
	User        userResponse        `json:"user"`
	Permissions domain.Permissions  `json:"permissions"`
	Legacy      domain.LegacyAccess `json:"legacy"`
}

// --- Users ---

type createUserRequest struct {
	Name               string `json:"name"                validate:"required"`
	Email              string `json:"email"               validate:"required,email"`
	Kind               string `json:"role"                validate:"omitempty,oneof=User Admin"`
	Company            string `json:"company"`
	Phone              string `json:"phone"`
	NotificationEmails string `json:"notification_emails"`
	AdminRole          string `json:"admin_role"          validate:"omitempty,oneof=super_admin billing_admin inventory_admin calibration_lab_admin qsafe_admin"`
	AdminType          string `json:"admin_type"          validate:"omitempty,oneof=full billing"`
	Password           string `json:"password"            validate:"required"`
	ConfirmPassword    string `json:"confirm_password"    validate:"required"`
}

type updateUserRequest struct {
	Name               *string `json:"name"                validate:"omitempty,min=1"`
	Email              *string `json:"email"               validate:"omitempty,email"`
	Company            *string `json:"company"`
	Phone              *string `json:"phone"`
	NotificationEmails *string `json:"notification_emails"`
}

// setRoleRequest: an empty role turns the account back into a regular user.
type setRoleRequest struct {
	Role string `json:"role" validate:"omitempty,oneof=super_admin billing_admin inventory_admin calibration_lab_admin qsafe_admin"`
}

type userResponse struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Kind               string    `json:"role"`
	Company            string    `json:"company"`
	Phone              string    `json:"phone"`
	NotificationEmails []string  `json:"notification_emails"`
	AdminRole          string    `json:"admin_role,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ownerResponse is the contact card shown next to a device.
type ownerResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// --- Devices ---

type addDeviceRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"           validate:"required"`
	Location      string `json:"location"       validate:"required"`
	Status        string `json:"status"         validate:"omitempty,oneof=Online Offline"`
	DeviceType    string `json:"device_type"    validate:"omitempty,oneof=Sales Rental"`
	Category      string `json:"category"       validate:"omitempty,oneof=sensor lock camera generic"`
	BillingType   string `json:"billing_type"   validate:"omitempty,oneof=Rental Purchase"`
	InstalledDate string `json:"installed_date" validate:"omitempty,datetime=2006-01-02"`
	SerialNumber  string `json:"serial_number"`
	Model         string `json:"model"`
}

type configPatchRequest struct {
	ReportInterval  *int    `json:"report_interval"`
	Threshold       *int    `json:"threshold"`
	AutoLock        *bool   `json:"auto_lock"`
	PinRequired     *bool   `json:"pin_required"`
	Resolution      *string `json:"resolution"`
	MotionDetection *bool   `json:"motion_detection"`
}

type configurationResponse struct {
	Category        string  `json:"category"`
	ReportInterval  *int    `json:"report_interval,omitempty"`
	Threshold       *int    `json:"threshold,omitempty"`
	AutoLock        *bool   `json:"auto_lock,omitempty"`
	PinRequired     *bool   `json:"pin_required,omitempty"`
	Resolution      *string `json:"resolution,omitempty"`
	MotionDetection *bool   `json:"motion_detection,omitempty"`
}

type billingResponse struct {
	Type          string `json:"type"`
	PaymentStatus string `json:"payment_status"`
	LastPayment   string `json:"last_payment"`
}

type deviceResponse struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	Location            string                `json:"location"`
	Status              string                `json:"status"`
	DeviceType          string                `json:"device_type"`
	InstalledDate       string                `json:"installed_date"`
	Configuration       configurationResponse `json:"configuration"`
	Billing             *billingResponse      `json:"billing,omitempty"`
	CalibrationDueDate  string                `json:"calibration_due_date,omitempty"`
	LastCalibrationDate string                `json:"last_calibration_date,omitempty"`
	SerialNumber        string                `json:"serial_number,omitempty"`
	Model               string                `json:"model,omitempty"`
}

type importResponse struct {
	AddedCount int              `json:"added_count"`
	Added      []deviceResponse `json:"added"`
	Skipped    []importer.Skip  `json:"skipped"`
}

// --- Access ---

type toggleAccessRequest struct {
	UserID   int    `json:"user_id"   validate:"required,gt=0"`
	DeviceID string `json:"device_id" validate:"required"`
}

type accessRightResponse struct {
	UserID       int    `json:"user_id"`
	DeviceID     string `json:"device_id"`
	Granted      bool   `json:"granted"`
	AssignedDate string `json:"assigned_date,omitempty"`
	DueDate      string `json:"due_date,omitempty"`
	DeviceType   string `json:"device_type,omitempty"`
}

type accessStatusResponse struct {
	UserID     int    `json:"user_id"`
	DeviceID   string `json:"device_id"`
	HasAccess  bool   `json:"has_access"`
	Blocked    bool   `json:"blocked"`
	CanOperate bool   `json:"can_operate"`
}

type matrixEntryResponse struct {
	Device  deviceResponse `json:"device"`
	Granted bool           `json:"granted"`
}

type deviceViewResponse struct {
	Device       deviceResponse `json:"device"`
	DeviceType   string         `json:"device_type"`
	AssignedDate string         `json:"assigned_date"`
	DueDate      string         `json:"due_date"`
	Blocked      bool           `json:"blocked"`
}

// --- Billing ---

type billingRowResponse struct {
	Device    deviceResponse `json:"device"`
	Owner     *ownerResponse `json:"owner"`
	OwnerName string         `json:"owner_name"`
	Blocked   bool           `json:"blocked"`
	DueAmount string         `json:"due_amount"`
}

type billingSummaryResponse struct {
	Total    int    `json:"total"`
	Online   int    `json:"online"`
	Rental   int    `json:"rental"`
	Sold     int    `json:"sold"`
	Overdue  int    `json:"overdue"`
	Blocked  int    `json:"blocked"`
	TotalDue string `json:"total_due"`
}

type billingOverviewResponse struct {
	Rows     []billingRowResponse   `json:"rows"`
	Summary  billingSummaryResponse `json:"summary"`
	Rate     string                 `json:"rate"`
	Currency string                 `json:"currency"`
}

type blockResponse struct {
	DeviceID string `json:"device_id"`
	Blocked  bool   `json:"blocked"`
}

type paymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Current Overdue"`
}

type paymentResponse struct {
	Device   deviceResponse `json:"device"`
	Amount   string         `json:"amount"`
	Currency string         `json:"currency"`
}

type auditEventResponse struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	ActorID  int       `json:"actor_id"`
	UserID   int       `json:"user_id,omitempty"`
	DeviceID string    `json:"device_id,omitempty"`
	Amount   string    `json:"amount,omitempty"`
	Detail   string    `json:"detail,omitempty"`
	At       time.Time `json:"at"`
}

// --- Calibration ---

type recordCalibrationRequest struct {
	Date           string `json:"date"            validate:"required,datetime=2006-01-02"`
	IntervalMonths int    `json:"interval_months" validate:"omitempty,min=1,max=60"`
}

type calibrationRowResponse struct {
	Device    deviceResponse `json:"device"`
	Status    string         `json:"status,omitempty"`
	Owner     *ownerResponse `json:"owner"`
	OwnerName string         `json:"owner_name"`
}

type calibrationOverviewResponse struct {
	Rows    []calibrationRowResponse `json:"rows"`
	Summary domain.ScheduleTally     `json:"summary"`
}

// --- Service reminders ---

type addReminderRequest struct {
	UserID          int    `json:"user_id"           validate:"required,gt=0"`
	ServiceType     string `json:"service_type"      validate:"required"`
	SiteLocation    string `json:"site_location"     validate:"required"`
	LastServiceDate string `json:"last_service_date" validate:"required,datetime=2006-01-02"`
	ReminderEnabled bool   `json:"reminder_enabled"`
	ReminderMonths  int    `json:"reminder_months"   validate:"required,min=1,max=60"`
}

type updateReminderRequest struct {
	ServiceType     *string `json:"service_type"      validate:"omitempty,min=1"`
	SiteLocation    *string `json:"site_location"     validate:"omitempty,min=1"`
	LastServiceDate *string `json:"last_service_date" validate:"omitempty,datetime=2006-01-02"`
	ReminderEnabled *bool   `json:"reminder_enabled"`
	ReminderMonths  *int    `json:"reminder_months"   validate:"omitempty,min=1,max=60"`
}

type reminderResponse struct {
	ID              string `json:"id"`
	UserID          int    `json:"user_id"`
	ServiceType     string `json:"service_type"`
	SiteLocation    string `json:"site_location"`
	LastServiceDate string `json:"last_service_date"`
	DueDate         string `json:"due_date"`
	ReminderEnabled bool   `json:"reminder_enabled"`
	ReminderMonths  int    `json:"reminder_months"`
}

type reminderRowResponse struct {
	Reminder reminderResponse `json:"reminder"`
	User     ownerResponse    `json:"user"`
	Status   string           `json:"status"`
}

type reminderSummaryResponse struct {
	Total   int `json:"total"`
	Overdue int `json:"overdue"`
	DueSoon int `json:"due_soon"`
	Enabled int `json:"enabled"`
}

type reminderOverviewResponse struct {
	Rows    []reminderRowResponse   `json:"rows"`
	Summary reminderSummaryResponse `json:"summary"`
}
