package models

type OnboardingState string

const (
	OnboardingStateSignedUp        OnboardingState = "SignedUp"
	OnboardingStateTermsPending    OnboardingState = "TermsPending"
	OnboardingStatePlanSelected    OnboardingState = "PlanSelected"
	OnboardingStatePaymentPending  OnboardingState = "PaymentPending"
	OnboardingStatePaymentApproved OnboardingState = "PaymentApproved"
	OnboardingStateKycSubmitted    OnboardingState = "KycSubmitted"
	OnboardingStateKycApproved     OnboardingState = "KycApproved"
	OnboardingStateKycRejected     OnboardingState = "KycRejected"
)

// OnboardingSnapshot is the practitioner onboarding state exposed to callers.
type OnboardingSnapshot struct {
	State         OnboardingState `json:"state"`
	AgreedToTerms bool            `json:"agreedToTerms"`
	SelectedPlan  *Plan           `json:"selectedPlan,omitempty"`
	PaymentStatus string          `json:"paymentStatus"`
	KycStatus     string          `json:"kycStatus,omitempty"`
	Watching      bool            `json:"watching"`
	InFlight      bool            `json:"inFlight"`
}

// KycGate is the outcome of a KYC page load. When Allowed is false the caller
// must navigate to Redirect.
type KycGate struct {
	Status   string `json:"status"`
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
}

type KycDetails struct {
	Specialization    string `json:"specialization"`
	LicenseNumber     string `json:"licenseNumber"`
	YearsOfExperience string `json:"yearsOfExperience"`
	Bio               string `json:"bio"`
}
