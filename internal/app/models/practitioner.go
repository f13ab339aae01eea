package models

type Practitioner struct {
	ID              string             `json:"_id,omitempty"`
	FullName        string             `json:"fullName,omitempty"`
	Email           string             `json:"email,omitempty"`
	Specialization  string             `json:"specialization,omitempty"`
	Focus           string             `json:"focus,omitempty"`
	Bio             string             `json:"bio,omitempty"`
	Location        string             `json:"location,omitempty"`
	ProfilePicture  string             `json:"profilePicture,omitempty"`
	ExperienceYears int                `json:"experienceYears,omitempty"`
	Ratings         *PractitionerScore `json:"ratings,omitempty"`
	Availability    []AvailabilitySlot `json:"availability,omitempty"`
}

type PractitionerScore struct {
	Average float64 `json:"average"`
	Count   int     `json:"count,omitempty"`
}

type AvailabilitySlot struct {
	Day  string `json:"day,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// NearbyPractitioner is one entry of the location based practitioner search.
// Distance is passed through as the backend formats it.
type NearbyPractitioner struct {
	ID        string      `json:"_id" validate:"required"`
	Name      string      `json:"name,omitempty"`
	Specialty string      `json:"specialty,omitempty"`
	Distance  interface{} `json:"distance,omitempty"`
}
