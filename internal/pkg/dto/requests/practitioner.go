package requests

type UpdatePractitionerProfile struct {
	FullName       string `json:"fullName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio" validate:"max=2000"`
	ProfilePicture string `json:"profilePicture" validate:"omitempty,url"`
}

// NearbyPractitioners carries coordinates as the query strings they arrive as.
type NearbyPractitioners struct {
	Latitude  string `json:"lat" validate:"required,latitude"`
	Longitude string `json:"lng" validate:"required,longitude"`
}
