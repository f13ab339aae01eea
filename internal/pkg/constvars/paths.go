package constvars

// Client-side destinations returned by the role router and the onboarding gate.
const (
	PathHome                  = "/"
	PathLogin                 = "/login"
	PathDashboard             = "/dashboard"
	PathAdminDashboard        = "/dashboard/admin"
	PathPractitionerDashboard = "/dashboard/practitioner"
	PathSubscription          = "/practitioners/terms&sub"
	PathKyc                   = "/kyc"
	PathProcessing            = "/processing"
)
