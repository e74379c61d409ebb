package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
)

const unassigned = "Unassigned"

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func datePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return domain.FormatDate(*t)
}

// --- Domain → HTTP response ---

func toUserResponse(u domain.User) userResponse {
	emails := u.NotificationList()
	if emails == nil {
		emails = []string{}
	}
	return userResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Kind:               u.Kind,
		Company:            u.Company,
		Phone:              u.Phone,
		NotificationEmails: emails,
		AdminRole:          string(u.AdminRole),
		CreatedAt:          u.CreatedAt.UTC(),
		UpdatedAt:          u.UpdatedAt.UTC(),
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toOwnerResponse(u domain.User) ownerResponse {
	return ownerResponse{ID: u.ID, Name: u.Name, Company: u.Company, Email: u.Email, Phone: u.Phone}
}

// owner returns the contact card and display name; nil means unassigned.
func owner(u *domain.User) (*ownerResponse, string) {
	if u == nil {
		return nil, unassigned
	}
	o := toOwnerResponse(*u)
	return &o, u.Name
}

func toConfigurationResponse(c domain.Configuration) configurationResponse {
	out := configurationResponse{Category: string(c.Category)}
	if s := c.Sensor; s != nil {
		out.ReportInterval, out.Threshold = &s.ReportInterval, &s.Threshold
	}
	if l := c.Lock; l != nil {
		out.AutoLock, out.PinRequired = &l.AutoLock, &l.PinRequired
	}
	if cam := c.Camera; cam != nil {
		out.Resolution, out.MotionDetection = &cam.Resolution, &cam.MotionDetection
	}
	return out
}

func toDeviceResponse(d domain.Device) deviceResponse {
	d = d.Clone()
	out := deviceResponse{
		ID:                  d.ID,
		Name:                d.Name,
		Location:            d.Location,
		Status:              string(d.Status),
		DeviceType:          string(d.DeviceType),
		InstalledDate:       domain.FormatDate(d.InstalledDate),
		Configuration:       toConfigurationResponse(d.Configuration),
		CalibrationDueDate:  datePtr(d.CalibrationDueDate),
		LastCalibrationDate: datePtr(d.LastCalibrationDate),
		SerialNumber:        d.SerialNumber,
		Model:               d.Model,
	}
	if b := d.Billing; b != nil {
		out.Billing = &billingResponse{
			Type:          string(b.Type),
			PaymentStatus: string(domain.PaymentStatusOf(d)),
			LastPayment:   domain.FormatDate(b.LastPayment),
		}
	}
	return out
}

func toDeviceResponses(devices []domain.Device) []deviceResponse {
	out := make([]deviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, toDeviceResponse(d))
	}
	return out
}

func toAccessRightResponse(a domain.AccessRight) accessRightResponse {
	return accessRightResponse{
		UserID:       a.UserID,
		DeviceID:     a.DeviceID,
		Granted:      a.Granted,
		AssignedDate: datePtr(a.AssignedDate),
		DueDate:      datePtr(a.DueDate),
		DeviceType:   string(a.DeviceType),
	}
}

func toDeviceViewResponses(views []domain.DeviceView) []deviceViewResponse {
	out := make([]deviceViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, deviceViewResponse{
			Device:       toDeviceResponse(v.Device),
			DeviceType:   string(v.DeviceType),
			AssignedDate: domain.FormatDate(v.AssignedDate),
			DueDate:      domain.FormatDate(v.DueDate),
			Blocked:      v.Blocked,
		})
	}
	return out
}

func toBillingRowResponses(rows []ports.BillingRow) []billingRowResponse {
	out := make([]billingRowResponse, 0, len(rows))
	for _, r := range rows {
		o, name := owner(r.Owner)
		out = append(out, billingRowResponse{
			Device:    toDeviceResponse(r.Device),
			Owner:     o,
			OwnerName: name,
			Blocked:   r.Blocked,
			DueAmount: money(r.DueAmount),
		})
	}
	return out
}

func toBillingOverviewResponse(o *ports.BillingOverview) billingOverviewResponse {
	s := o.Summary
	return billingOverviewResponse{
		Rows: toBillingRowResponses(o.Rows),
		Summary: billingSummaryResponse{
			Total:    s.Total,
			Online:   s.Online,
			Rental:   s.Rental,
			Sold:     s.Sold,
			Overdue:  s.Overdue,
			Blocked:  s.Blocked,
			TotalDue: money(s.TotalDue),
		},
		Rate:     money(o.Rate),
		Currency: o.Currency,
	}
}

func toAuditEventResponses(events []domain.AuditEvent) []auditEventResponse {
	out := make([]auditEventResponse, 0, len(events))
	for _, e := range events {
		r := auditEventResponse{
			ID:       e.ID,
			Kind:     string(e.Kind),
			ActorID:  e.ActorID,
			UserID:   e.UserID,
			DeviceID: e.DeviceID,
			Detail:   e.Detail,
			At:       e.At.UTC(),
		}
		if e.Amount != nil {
			r.Amount = money(*e.Amount)
		}
		out = append(out, r)
	}
	return out
}

func toCalibrationOverviewResponse(o *ports.CalibrationOverview) calibrationOverviewResponse {
	rows := make([]calibrationRowResponse, 0, len(o.Rows))
	for _, r := range o.Rows {
		ow, name := owner(r.Owner)
		rows = append(rows, calibrationRowResponse{
			Device:    toDeviceResponse(r.Device),
			Status:    string(r.Status),
			Owner:     ow,
			OwnerName: name,
		})
	}
	return calibrationOverviewResponse{Rows: rows, Summary: o.Summary}
}

func toReminderResponse(r domain.ServiceReminder) reminderResponse {
	return reminderResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		ServiceType:     r.ServiceType,
		SiteLocation:    r.SiteLocation,
		LastServiceDate: domain.FormatDate(r.LastServiceDate),
		DueDate:         domain.FormatDate(r.DueDate),
		ReminderEnabled: r.ReminderEnabled,
		ReminderMonths:  r.ReminderMonths,
	}
}

func toReminderOverviewResponse(o *ports.ReminderOverview) reminderOverviewResponse {
	rows := make([]reminderRowResponse, 0, len(o.Rows))
	for _, r := range o.Rows {
		rows = append(rows, reminderRowResponse{
			Reminder: toReminderResponse(r.Reminder),
			User:     toOwnerResponse(r.User),
			Status:   string(r.Status),
		})
	}
	s := o.Summary
	return reminderOverviewResponse{
		Rows:    rows,
		Summary: reminderSummaryResponse{Total: s.Total, Overdue: s.Overdue, DueSoon: s.DueSoon, Enabled: s.Enabled},
	}
}

// --- HTTP request → service input ---

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:               req.Name,
		Email:              req.Email,
		Kind:               req.Kind,
		Company:            req.Company,
		Phone:              req.Phone,
		NotificationEmails: req.NotificationEmails,
		AdminRole:          domain.ParseRole(req.AdminRole),
		AdminType:          domain.AdminType(req.AdminType),
		Password:           req.Password,
		ConfirmPassword:    req.ConfirmPassword,
	}
}

func toUserPatch(req updateUserRequest) domain.UserPatch {
	return domain.UserPatch{
		Name:               req.Name,
		Email:              req.Email,
		Company:            req.Company,
		Phone:              req.Phone,
		NotificationEmails: req.NotificationEmails,
	}
}

func toAddDeviceInput(req addDeviceRequest) (ports.AddDeviceInput, error) {
	in := ports.AddDeviceInput{
		ID:           req.ID,
		Name:         req.Name,
		Location:     req.Location,
		SerialNumber: req.SerialNumber,
		Model:        req.Model,
	}
	var err error
	if in.Status, err = domain.ParseDeviceStatus(req.Status); err != nil {
		return in, err
	}
	if in.DeviceType, err = domain.ParseDeviceType(req.DeviceType); err != nil {
		return in, err
	}
	if in.Category, err = domain.ParseCategory(req.Category); err != nil {
		return in, err
	}
	if in.BillingType, err = domain.ParseBillingType(req.BillingType); err != nil {
		return in, err
	}
	if req.InstalledDate != "" {
		if in.InstalledDate, err = domain.ParseDate("installed_date", req.InstalledDate); err != nil {
			return in, err
		}
	}
	return in, nil
}

func toConfigPatch(req configPatchRequest) domain.ConfigPatch {
	return domain.ConfigPatch{
		ReportInterval:  req.ReportInterval,
		Threshold:       req.Threshold,
		AutoLock:        req.AutoLock,
		PinRequired:     req.PinRequired,
		Resolution:      req.Resolution,
		MotionDetection: req.MotionDetection,
	}
}

func toAddReminderInput(req addReminderRequest) (ports.AddReminderInput, error) {
	last, err := domain.ParseDate("last_service_date", req.LastServiceDate)
	if err != nil {
		return ports.AddReminderInput{}, err
	}
	return ports.AddReminderInput{
		UserID:          req.UserID,
		ServiceType:     req.ServiceType,
		SiteLocation:    req.SiteLocation,
		LastServiceDate: last,
		ReminderEnabled: req.ReminderEnabled,
		ReminderMonths:  req.ReminderMonths,
	}, nil
}

func toReminderPatch(req updateReminderRequest) (domain.ReminderPatch, error) {
	p := domain.ReminderPatch{
		ServiceType:     req.ServiceType,
		SiteLocation:    req.SiteLocation,
		ReminderEnabled: req.ReminderEnabled,
		ReminderMonths:  req.ReminderMonths,
	}
	if req.LastServiceDate != nil {
		last, err := domain.ParseDate("last_service_date", *req.LastServiceDate)
		if err != nil {
			return p, err
		}
		p.LastServiceDate = &last
	}
	return p, nil
}
