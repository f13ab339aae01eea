package requests

type Subscribe struct {
	AgreedToTerms bool   `json:"agreedToTerms"`
	PlanID        string `json:"planId"`
}

type SubmitKyc struct {
	Specialization    string `json:"specialization" validate:"required"`
	LicenseNumber     string `json:"licenseNumber" validate:"required"`
	YearsOfExperience string `json:"yearsOfExperience" validate:"required,numeric"`
	Bio               string `json:"bio" validate:"max=2000"`
	DocumentRef       string `json:"documentRef" validate:"required"`
}
