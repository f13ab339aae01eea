package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	LoginSuccessMessage         = "successfully login"
	SignupSuccessMessage        = "account created successfully"
	LogoutSuccessMessage        = "successfully logout"
	GetSessionSuccessMessage    = "get session successfully"
	UpdateProfileSuccessMessage = "profile updated successfully"

	// Onboarding messages
	GetOnboardingStateSuccessMessage = "get onboarding state successfully"
	GetPlansSuccessMessage           = "get subscription plans successfully"
	SubscribeSuccessMessage          = "subscription plan saved, proceed to payment"
	ConfirmPaymentSuccessMessage     = "payment confirmation requested, waiting for approval"
	PaymentApprovedSuccessMessage    = "payment approved, proceed to KYC"
	KycGateSuccessMessage            = "KYC page checked"
	KycSubmitSuccessMessage          = "KYC submitted successfully, await admin approval"
	KycStatusSuccessMessage          = "get KYC status successfully"

	// Appointment messages
	GetAppointmentsSuccessMessage       = "get appointments successfully"
	GetAppointmentSuccessMessage        = "get appointment successfully"
	CreateAppointmentSuccessMessage     = "appointment scheduled, the practitioner will be notified"
	RescheduleAppointmentSuccessMessage = "appointment rescheduled successfully"
	CancelAppointmentSuccessMessage     = "appointment cancelled successfully"

	// Dashboard messages
	GetDashboardSuccessMessage     = "get dashboard successfully"
	GetPractitionersSuccessMessage = "get practitioners successfully"
	GetPractitionerSuccessMessage  = "get practitioner successfully"
	GetNearbyPractitionersMessage  = "get nearby practitioners successfully"
)
