package utils

import (
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Age = strings.TrimSpace(input.Age)
	input.Gender = strings.TrimSpace(input.Gender)
	input.Country = strings.TrimSpace(input.Country)
	input.ReasonForJoining = strings.TrimSpace(input.ReasonForJoining)
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
	if input.Role == "" {
		input.Role = constvars.RolePatient
	}
}

func SanitizeSubmitKycRequest(input *requests.SubmitKyc) {
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.LicenseNumber = strings.TrimSpace(input.LicenseNumber)
	input.YearsOfExperience = strings.TrimSpace(input.YearsOfExperience)
	input.Bio = strings.TrimSpace(input.Bio)
	input.DocumentRef = strings.TrimSpace(input.DocumentRef)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Location = strings.TrimSpace(input.Location)
	input.PractitionerID = strings.TrimSpace(input.PractitionerID)
}

func SanitizeNearbyPractitionersRequest(input *requests.NearbyPractitioners) {
	input.Latitude = strings.TrimSpace(input.Latitude)
	input.Longitude = strings.TrimSpace(input.Longitude)
}

func SanitizeRescheduleAppointmentRequest(input *requests.RescheduleAppointment) {
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}

func SanitizeUpdatePractitionerProfileRequest(input *requests.UpdatePractitionerProfile) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Bio = strings.TrimSpace(input.Bio)
	input.ProfilePicture = strings.TrimSpace(input.ProfilePicture)
}
