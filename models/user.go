package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	Designer = "Designer"
	Admin    = "Admin"
)

const bcryptCost = 8

type Credentials struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	DeviceFingerprint string `json:"deviceFingerprint,omitempty"`
}

type UserSignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserUpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type User struct {
	UserID         string    `json:"userId" db:"user_id"`
	Username       string    `json:"username" db:"username"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"password_hash"`
	Kind           string    `json:"kind" db:"kind"`
	Approved       bool      `json:"approved" db:"approved"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type UserDevice struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Fingerprint string    `json:"fingerprint" db:"fingerprint"`
	DeviceData  string    `json:"deviceData" db:"device_data"`
	Expiry      time.Time `json:"expiry" db:"expiry"`
}

// Validate checks a signup request before a user is built from it.
func (req UserSignupRequest) Validate() error {
	if len(req.Username) == 0 {
		return fmt.Errorf("username is required")
	}
	if strings.ContainsAny(req.Username, " \t\n") {
		return fmt.Errorf("username cannot contain spaces")
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

func NewUser(userSignup UserSignupRequest) (User, error) {
	hashedPassword, hashErr := GenerateHash(userSignup.Password)
	if hashErr != nil {
		return User{}, hashErr
	}
	now := time.Now()
	return User{
		UserID:         uuid.New().String(),
		Username:       userSignup.Username,
		Email:          strings.ToLower(userSignup.Email),
		HashedPassword: hashedPassword,
		Kind:           Designer,
		Approved:       true, // Auto-approve for simplicity
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func GenerateHash(password string) (string, error) {
	hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if hashErr != nil {
		return "", fmt.Errorf("error hashing password %v", hashErr)
	}

	return string(hashedPassword), nil
}

// CheckPassword reports whether password matches the stored hash.
func (user User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return fmt.Errorf("error in compare of hash %v", err)
	}
	return nil
}
