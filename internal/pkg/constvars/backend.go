package constvars

// Backend API paths.
const (
	BackendAuthRegister = "/api/auth/register"
	BackendAuthLogin    = "/api/auth/login"
	BackendAuthLogout   = "/api/auth/logout"

	BackendKycSave   = "/api/kyc/save"
	BackendKycUpload = "/api/kyc/upload"
	BackendKycMe     = "/api/kyc/me"

	BackendAppointmentCreate             = "/api/appointments/create"
	BackendPatientAppointments           = "/api/patient/appointments"
	BackendPatientAppointmentFormat      = "/api/patient/appointment/%s"
	BackendPatientAppointmentReschedule  = "/api/patient/appointment/%s/reschedule"
	BackendPatientAppointmentCancel      = "/api/patient/appointment/%s/cancel"
	BackendPatientDashboardSectionFormat = "/api/patient/%s"

	BackendPractitionerOverview      = "/api/practitioner/overview"
	BackendPractitionerAppointments  = "/api/practitioner/appointments"
	BackendPractitionerPatients      = "/api/practitioner/patients"
	BackendPractitionerProfile       = "/api/practitioner/profile"
	BackendPractitionerPublic        = "/api/practitioner/public"
	BackendPractitionerPublicByIDFmt = "/api/practitioner/public/%s"
	BackendPractitionersNearby       = "/api/practitioners/nearby"

	BackendAdminOverview    = "/api/admin/overview"
	BackendAdminPanelFormat = "/api/admin/%s"
)

const (
	QueryParamUserID    = "userId"
	QueryParamLatitude  = "lat"
	QueryParamLongitude = "lng"
)

const (
	KycUploadFieldCertificate = "certificate"
)

const (
	AdminPanelPractitioners = "practitioners"
	AdminPanelUsers         = "users"
	AdminPanelKyc           = "kyc"
	AdminPanelLogs          = "logs"
	AdminPanelSupport       = "support"
)

const (
	PatientSectionMetrics        = "metrics"
	PatientSectionAppointments   = "appointments"
	PatientSectionSummary        = "summary"
	PatientSectionHealthProgress = "health-progress"
	PatientSectionReport         = "report"
	PatientSectionTreatment      = "treatment"
	PatientSectionMedicine       = "medicine"
)
