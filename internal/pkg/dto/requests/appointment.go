package requests

type CreateAppointment struct {
	Specialty      string `json:"specialty"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string `json:"time" validate:"required,datetime=15:04"`
	Location       string `json:"location" validate:"required,max=200"`
	PractitionerID string `json:"practitionerId" validate:"required"`
}

type RescheduleAppointment struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04"`
}
