package request

import (
	"barberbook/internal/domain/customer"
)

type CustomerRegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *CustomerRegisterRequest) ToDomain() (customer.Credentials, error) {
	return customer.NewCredentials(r.Email, r.Password)
}

type CustomerLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *CustomerLoginRequest) ToDomain() (customer.Credentials, error) {
	return customer.NewCredentials(r.Email, r.Password)
}

type OwnerSignupRequest struct {
	Slug         string `json:"slug" binding:"required,min=3"`
	BusinessName string `json:"business_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
}

type OwnerLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
