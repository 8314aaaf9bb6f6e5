package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"jdoe"`
	Password string `json:"password" validate:"required,min=8" example:"s3cret-pass"`
	FullName string `json:"full_name" validate:"max=200" example:"John Doe"`
	Email    string `json:"email" validate:"omitempty,email" example:"jdoe@example.com"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"jdoe"`
	Password string `json:"password" validate:"required,min=8" example:"s3cret-pass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
