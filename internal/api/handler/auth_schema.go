package handler

// --- Request / Response types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userData is the password-free view of an account returned by login and
// identity lookup.
type userData struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Success      bool     `json:"success"`
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	Data         userData `json:"data"`
	Msg          string   `json:"msg"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type getUserResponse struct {
	Success bool     `json:"success"`
	Data    userData `json:"data"`
}

// messageResponse is the {"msg": ...} envelope used by auth endpoints.
type messageResponse struct {
	Msg string `json:"msg"`
}

// validationErrorResponse carries the structured field errors returned on
// malformed registration input.
type validationErrorResponse struct {
	Errors []string `json:"errors"`
}
