package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memRepo struct {
	byEmail map[string]*User
	byID    map[string]*User
}

func newMemRepo() *memRepo {
	return &memRepo{byEmail: map[string]*User{}, byID: map[string]*User{}}
}

func (m *memRepo) CreateUser(ctx context.Context, u *User) error {
	if _, exists := m.byEmail[u.Email]; exists {
		return fmt.Errorf("email already registered")
	}
	m.byEmail[u.Email] = u
	m.byID[u.ID.String()] = u
	return nil
}

func (m *memRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func (m *memRepo) GetUserByID(ctx context.Context, id string) (*User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return u, nil
}

func TestRegisterUserHashesPassword(t *testing.T) {
	svc := NewService(newMemRepo())

	u, err := svc.RegisterUser(context.Background(), "amy@example.com", "hunter2", "Amy", "admin")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2")))
	assert.Equal(t, RoleAdmin, u.Role)
}

func TestRegisterUserDefaultRole(t *testing.T) {
	svc := NewService(newMemRepo())

	u, err := svc.RegisterUser(context.Background(), "bob@example.com", "pw", "Bob", "")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, u.Role)
}

func TestRegisterUserInvalidRole(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.RegisterUser(context.Background(), "eve@example.com", "pw", "Eve", "superadmin")
	assert.ErrorContains(t, err, "invalid role")
}

func TestRegisterUserRequiredFields(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "", "pw", "No Email", "")
	assert.ErrorContains(t, err, "email is required")

	_, err = svc.RegisterUser(ctx, "x@example.com", "", "No Password", "")
	assert.ErrorContains(t, err, "password is required")
}

func TestParseRole(t *testing.T) {
	for value, want := range map[string]Role{"admin": RoleAdmin, "user": RoleUser, "": RoleUser} {
		got, err := ParseRole(value)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseRole("root")
	assert.Error(t, err)
}
