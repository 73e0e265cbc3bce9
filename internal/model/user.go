package model

import "time"

// User represents an identity record in the database. Password holds the
// bcrypt hash and must never appear in an API response.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

// Partner extends a User with company details. Exactly one per user.
type Partner struct {
	ID          int64
	UserID      int64
	CompanyName string
	CreatedAt   time.Time
}

// Customer extends a User with contact details. Exactly one per user.
type Customer struct {
	ID        int64
	UserID    int64
	Address   string
	Phone     string
	CreatedAt time.Time
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed token issued for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterPartnerRequest represents a partner registration request.
type RegisterPartnerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
}

// RegisterCustomerRequest represents a customer registration request.
type RegisterCustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// PartnerResponse represents a created partner profile. No password fields.
type PartnerResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	UserID      int64     `json:"user_id"`
	CompanyName string    `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// CustomerResponse represents a created customer profile. No password fields.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"user_id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
