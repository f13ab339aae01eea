package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Register struct {
	FullName         string `json:"fullName" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	Phone            string `json:"phone,omitempty"`
	Age              string `json:"age,omitempty" validate:"omitempty,numeric"`
	Gender           string `json:"gender,omitempty"`
	Country          string `json:"country,omitempty"`
	ReasonForJoining string `json:"reasonForJoining,omitempty"`
	Role             string `json:"role" validate:"required,user_role"`
}
