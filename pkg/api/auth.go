package api

import "github.com/assembleally/client/internal/models"

// Credentials представляет тело запроса POST /token/
type Credentials struct {
	Username string `json:"username" validate:"required"` // username пользователя
	Password string `json:"password" validate:"required"` // пароль
}

// RegisterRequest представляет тело запроса POST /register/
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"max=150"`
	LastName        string `json:"last_name" validate:"max=150"`
	IsAssembler     bool   `json:"is_assembler"`
	Bio             string `json:"bio,omitempty"`
	Location        string `json:"location,omitempty" validate:"max=100"`
	Phone           string `json:"phone,omitempty" validate:"max=15"`
}

// TokenResponse представляет ответ /token/ и /register/.
// Поле user сервер присылает только при регистрации.
type TokenResponse struct {
	Access  string          `json:"access"`  // access token (bearer)
	Refresh string          `json:"refresh"` // refresh token
	User    *models.Profile `json:"user,omitempty"`
}

// RefreshRequest представляет тело запроса POST /token/refresh/
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"` // refresh token
}

// RefreshResponse представляет ответ POST /token/refresh/
type RefreshResponse struct {
	Access string `json:"access"` // новый access token
}
