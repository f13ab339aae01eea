package constvars

const (
	RolePatient      = "patient"
	RolePractitioner = "practitioner"
	RoleAdmin        = "admin"
	RoleAnonymous    = "anonymous"
)

const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
)

const (
	KycStatusNotSubmitted     = "not_submitted"
	KycStatusPaymentConfirmed = "payment_confirmed"
	KycStatusSubmitted        = "submitted"
	KycStatusApproved         = "approved"
	KycStatusRejected         = "rejected"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	PlanIDBasic  = "basic"
	PlanIDPro    = "pro"
	PlanIDAnnual = "annual"
)
