package dto

type RegisterDTO struct {
	Username          string `json:"username"           validate:"required,alphanum,min=3,max=30"`
	Email             string `json:"email"              validate:"required,email"`
	Password          string `json:"password"           validate:"required"`
	ConfirmedPassword string `json:"confirmed_password" validate:"required,eqfield=Password"`
}

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ValidateDTO struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// LogoutDTO carries the caller's tokens explicitly; logout is an
// authenticated operation keyed on the access token. The refresh token is
// optional and, when present, gets revoked alongside.
type LogoutDTO struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token"`
}

// UserView is the public projection of a user. The password hash never
// appears here.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
