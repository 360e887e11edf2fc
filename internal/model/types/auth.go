package types

type LoginRequest struct {
	Username string `json:"username" validate:"required,lte=64"`
	Password string `json:"password" validate:"required,lte=128"`
}
