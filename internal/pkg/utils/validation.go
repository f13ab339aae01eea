package utils

import (
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("plan_id", validatePlanID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RolePractitioner || value == constvars.RolePatient
}

func validatePlanID(fl validator.FieldLevel) bool {
	_, ok := models.FindPlan(fl.Field().String())
	return ok
}
