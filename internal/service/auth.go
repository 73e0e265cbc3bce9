package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ticketbase/ticketbase-go/internal/crypto"
	"github.com/ticketbase/ticketbase-go/internal/model"
	"github.com/ticketbase/ticketbase-go/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already taken")
	ErrValidation         = errors.New("validation failed")
)

// UserStore persists user records and their role profiles.
type UserStore interface {
	CreateWithPartner(ctx context.Context, user *model.User, partner *model.Partner) error
	CreateWithCustomer(ctx context.Context, user *model.User, customer *model.Customer) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService handles login and the partner/customer registration flows.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
	validator *validator.Validate
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
		validator: validator.New(),
	}
}

// RegisterPartner creates a user and its partner profile as one unit.
func (s *AuthService) RegisterPartner(ctx context.Context, req model.RegisterPartnerRequest) (model.PartnerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return model.PartnerResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.PartnerResponse{}, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}
	partner := &model.Partner{
		CompanyName: req.CompanyName,
	}

	if err := s.users.CreateWithPartner(ctx, user, partner); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.PartnerResponse{}, ErrEmailTaken
		}
		return model.PartnerResponse{}, err
	}

	return model.PartnerResponse{
		ID:          partner.ID,
		Name:        user.Name,
		UserID:      user.ID,
		CompanyName: partner.CompanyName,
		CreatedAt:   partner.CreatedAt,
	}, nil
}

// RegisterCustomer creates a user and its customer profile as one unit.
func (s *AuthService) RegisterCustomer(ctx context.Context, req model.RegisterCustomerRequest) (model.CustomerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return model.CustomerResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.CustomerResponse{}, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}
	customer := &model.Customer{
		Address: req.Address,
		Phone:   req.Phone,
	}

	if err := s.users.CreateWithCustomer(ctx, user, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.CustomerResponse{}, ErrEmailTaken
		}
		return model.CustomerResponse{}, err
	}

	return model.CustomerResponse{
		ID:        customer.ID,
		Name:      user.Name,
		UserID:    user.ID,
		Address:   customer.Address,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
	}, nil
}

// Login exchanges valid credentials for a signed token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return model.LoginResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.Password) {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{Token: token}, nil
}
