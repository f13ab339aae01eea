package models

type Appointment struct {
	ID           string               `json:"_id"`
	Date         string               `json:"date"`
	Time         string               `json:"time"`
	Status       string               `json:"status"`
	Reason       string               `json:"reason,omitempty"`
	Title        string               `json:"title,omitempty"`
	Desc         string               `json:"desc,omitempty"`
	Practitioner *PractitionerSummary `json:"practitioner,omitempty"`
}

type PractitionerSummary struct {
	ID             string `json:"_id,omitempty"`
	FullName       string `json:"fullName,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}
