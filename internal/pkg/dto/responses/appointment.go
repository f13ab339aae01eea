package responses

import (
	"healthme-client/internal/app/models"

	"github.com/goccy/go-json"
)

// AppointmentList accepts data as {appointments: [...]} or as a bare array.
type AppointmentList struct {
	Envelope
	Data json.RawMessage `json:"data" validate:"required"`
}

type appointmentListData struct {
	Appointments []models.Appointment `json:"appointments"`
}

func (a AppointmentList) Appointments() ([]models.Appointment, error) {
	var list []models.Appointment
	if err := json.Unmarshal(a.Data, &list); err == nil {
		return list, nil
	}

	var nested appointmentListData
	if err := json.Unmarshal(a.Data, &nested); err != nil {
		return nil, err
	}
	if nested.Appointments == nil {
		return []models.Appointment{}, nil
	}
	return nested.Appointments, nil
}

type Appointment struct {
	Envelope
	Data *models.Appointment `json:"data" validate:"required"`
}

// AppointmentCreated may carry the new appointment under data or appointment,
// or nothing beyond success.
type AppointmentCreated struct {
	Envelope
	Data        *models.Appointment `json:"data"`
	Appointment *models.Appointment `json:"appointment"`
}

func (a AppointmentCreated) Created() *models.Appointment {
	if a.Data != nil {
		return a.Data
	}
	return a.Appointment
}

// NearbyPractitioners is the search that fills the booking form.
type NearbyPractitioners struct {
	Envelope
	Practitioners []models.NearbyPractitioner `json:"practitioners" validate:"dive"`
}
