package responses

type AuthUser struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role" validate:"required"`
}

type Login struct {
	Envelope
	User  *AuthUser `json:"user" validate:"required"`
	Token string    `json:"token" validate:"required"`
}

// Register carries a token only when the backend logs the new user in.
type Register struct {
	Envelope
	User  *AuthUser `json:"user" validate:"required"`
	Token string    `json:"token"`
}

type Message struct {
	Envelope
}
