package dto

type SignUpInput struct {
	Username  string `json:"username" validate:"required,alphanum,min=3,max=20"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
}
