package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"go-catalog-ws/internal/model"
	"go-catalog-ws/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrAuthDisabled       = errors.New("admin login is not configured")
)

const adminSubject = "admin"

type AuthService interface {
	Enabled() bool
	Login(password string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
}

type LoginResponse struct {
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
	Privileges []string  `json:"privileges"`
}

type TokenValidationResponse struct {
	Subject    string    `json:"subject"`
	ExpiresAt  time.Time `json:"expires_at"`
	Privileges []string  `json:"privileges"`
}

type authService struct {
	passwordHash []byte
	tokens       *jwt.Manager
}

// NewAuthService checks logins against a bcrypt hash. An empty hash disables
// login and leaves the catalog open.
func NewAuthService(passwordHash string, tokens *jwt.Manager) AuthService {
	return &authService{
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
	}
}

func (s *authService) Enabled() bool {
	return len(s.passwordHash) > 0
}

func (s *authService) Login(password string) (*LoginResponse, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(adminSubject, model.AdminPrivileges)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:      token,
		ExpiresAt:  expiresAt,
		Privileges: model.AdminPrivileges,
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &TokenValidationResponse{
		Subject:    claims.Subject,
		ExpiresAt:  expiresAt,
		Privileges: claims.Privileges,
	}, nil
}
