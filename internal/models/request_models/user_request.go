package request_models

type RegisterUserRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=80"`
	Email string `json:"email" binding:"required,email"`
}
