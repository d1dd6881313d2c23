package user

type SignupInput struct {
	Body SignupRequest
}

// Request fields stay schema-optional: the domain layer owns validation,
// so a short password reports 400 rather than a schema 422.
type SignupRequest struct {
	Email    string `json:"email,omitempty" example:"user@example.com" doc:"Email address to register"`
	Password string `json:"password,omitempty" example:"s3cr3t-pass" doc:"Account password, at least 6 characters"`
}

type SignupOutput struct {
	Body SignupResponse
}

type SignupResponse struct {
	Message string `json:"message" example:"User registered successfully"`
}

type LoginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" example:"user@example.com" doc:"Registered email address"`
	Password string `json:"password,omitempty" example:"s3cr3t-pass" doc:"Account password"`
}

type LoginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Message string `json:"message" example:"Logged in successfully"`
	Token   string `json:"token" doc:"Bearer token for subsequent requests"`
}
