package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/studygrid/studygrid-lms/internal/catalog"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("oldsecret"), bcrypt.MinCost)
	require.NoError(t, err)
	p := catalog.NewMemoryProvider(nil, nil, nil, catalog.GradeBook{}, catalog.Profile{
		ID:           "u1",
		Name:         "Alex Chen",
		Email:        "alex@example.edu",
		Department:   "Computer Science",
		PasswordHash: string(hash),
	})
	svc, err := NewService(p)
	require.NoError(t, err)
	return svc
}

func strp(s string) *string { return &s }

func TestApplyPartialUpdate(t *testing.T) {
	svc := newTestService(t)

	got := svc.Apply(Update{Name: strp("Alex M. Chen"), About: strp("senior year")})
	assert.Equal(t, "Alex M. Chen", got.Name)
	assert.Equal(t, "senior year", got.About)
	// untouched fields keep their values
	assert.Equal(t, "alex@example.edu", got.Email)
	assert.Equal(t, "Computer Science", got.Department)
}

func TestSetNotifications(t *testing.T) {
	svc := newTestService(t)
	got := svc.SetNotifications(catalog.NotificationPrefs{Email: true, Grades: true})
	assert.True(t, got.Notifications.Email)
	assert.True(t, got.Notifications.Grades)
	assert.False(t, got.Notifications.Assignments)
}

func TestChangePassword(t *testing.T) {
	svc := newTestService(t)

	err := svc.ChangePassword(PasswordChange{Current: "oldsecret", New: "newsecret1", Confirm: "newsecret1"})
	require.NoError(t, err)

	// the old password no longer verifies
	err = svc.ChangePassword(PasswordChange{Current: "oldsecret", New: "whatever123", Confirm: "whatever123"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	// the new one does
	err = svc.ChangePassword(PasswordChange{Current: "newsecret1", New: "another-one", Confirm: "another-one"})
	assert.NoError(t, err)
}

func TestChangePasswordValidation(t *testing.T) {
	svc := newTestService(t)

	err := svc.ChangePassword(PasswordChange{Current: "oldsecret", New: "abcdefgh", Confirm: "abcdefgi"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	err = svc.ChangePassword(PasswordChange{Current: "oldsecret", New: "short", Confirm: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	err = svc.ChangePassword(PasswordChange{Current: "wrong", New: "longenough", Confirm: "longenough"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	// failed attempts leave the hash alone
	err = svc.ChangePassword(PasswordChange{Current: "oldsecret", New: "longenough", Confirm: "longenough"})
	assert.NoError(t, err)
}
