package app

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bookshelf/internal/model"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
}

type AuthService struct {
	userStore  UserStore
	bcryptCost int
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

func NewAuthService(userStore UserStore, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{userStore: userStore, bcryptCost: bcryptCost}
}

// Register creates the user and returns it for immediate session establishment.
// The unique index on email is the authoritative duplicate guard; the
// pre-check only exists to short-circuit the common case.
func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)
	password := input.Password

	if email == "" || username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	existing, err := s.userStore.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userStore.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a concurrent registration race for the same email.
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the matching user. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(input LoginInput) (*model.User, error) {
	email := strings.TrimSpace(input.Email)
	password := input.Password
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.userStore.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}

	// bcrypt compares in constant time and treats a malformed stored hash
	// as a mismatch rather than a panic.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}
	return user, nil
}

func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	return s.userStore.GetByID(id)
}
