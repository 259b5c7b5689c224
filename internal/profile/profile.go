// Package profile manages the session-local copy of the student profile:
// field edits, notification preferences, and the local password change.
package profile

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/studygrid/studygrid-lms/internal/catalog"
)

var (
	ErrWrongPassword    = errors.New("current password is incorrect")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
)

// Update carries the editable profile fields. Nil pointers leave the field
// untouched.
type Update struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Department  *string `json:"department,omitempty"`
	YearOfStudy *string `json:"year_of_study,omitempty"`
	About       *string `json:"about,omitempty"`
}

type PasswordChange struct {
	Current string `json:"current_password"`
	New     string `json:"new_password"`
	Confirm string `json:"confirm_password"`
}

type Service struct {
	mu      sync.Mutex
	current catalog.Profile
}

func NewService(p catalog.Provider) (*Service, error) {
	prof, err := p.GetProfile()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &Service{current: prof}, nil
}

func (s *Service) Get() catalog.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Service) Apply(u Update) catalog.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	setIf(&s.current.Name, u.Name)
	setIf(&s.current.Email, u.Email)
	setIf(&s.current.Phone, u.Phone)
	setIf(&s.current.Department, u.Department)
	setIf(&s.current.YearOfStudy, u.YearOfStudy)
	setIf(&s.current.About, u.About)
	return s.current
}

func (s *Service) SetNotifications(n catalog.NotificationPrefs) catalog.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Notifications = n
	return s.current
}

// ChangePassword verifies the current password against the stored bcrypt
// hash, validates the new one, and re-hashes. Session-local only; nothing is
// written back to the catalog.
func (s *Service) ChangePassword(c PasswordChange) error {
	if c.New != c.Confirm {
		return ErrPasswordMismatch
	}
	if len(c.New) < 8 {
		return ErrPasswordTooShort
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := bcrypt.CompareHashAndPassword([]byte(s.current.PasswordHash), []byte(c.Current)); err != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.New), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	s.current.PasswordHash = string(hash)
	return nil
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
