package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse carries a plain confirmation text.
type messageResponse struct {
	Message string `json:"message"`
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password"        validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
