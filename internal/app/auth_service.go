package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/clock"
	"github.com/Gustavoleal1194/Projeto2025-API-sub002/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeRepository interface {
	GetEmployeeByEmail(ctx context.Context, email string) (domain.Employee, error)
	CreateEmployee(ctx context.Context, emp domain.Employee) error
}

// Claims carried by staff tokens.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	repo   EmployeeRepository
	clock  clock.Clock
	secret []byte
	ttl    time.Duration
}

func NewAuthService(repo EmployeeRepository, clk clock.Clock, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{
		repo:   repo,
		clock:  clk,
		secret: secret,
		ttl:    ttl,
	}
}

// Login checks the staff credentials and issues a signed HS256 token.
// A missing account and a wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	emp, err := s.repo.GetEmployeeByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	now := s.clock.Now()
	claims := Claims{
		Name: emp.Name,
		Role: emp.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   emp.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token and returns its claims.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	return claims, nil
}

// EnsureEmployee creates a staff account unless the email is already
// taken. Used to bootstrap the first admin from the environment.
func (s *AuthService) EnsureEmployee(ctx context.Context, name, email, password, role string) error {
	if email == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	_, err := s.repo.GetEmployeeByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.CreateEmployee(ctx, domain.Employee{
		ID:           newUUID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
}
