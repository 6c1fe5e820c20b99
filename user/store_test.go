package user

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *Store {
	s := NewStore(filepath.Join(t.TempDir(), "users.json"), nil)
	s.Cost = bcrypt.MinCost
	return s
}

func TestRegisterAndList(t *testing.T) {
	s := newTestStore(t)

	users, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = s.Register("Zoe", "zoe@example.com", "secret")
	require.NoError(t, err)

	u, err := s.Register("  alice ", " Alice@Example.com ", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "hunter2", u.PasswordHash)

	_, err = s.Register("Bob", "bob@example.com", "pw")
	require.NoError(t, err)

	users, err = s.List()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
	assert.Equal(t, "Zoe", users[2].Name)
}

func TestRegisterDuplicate(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Register("Alice", "alice@example.com", "a")
	require.NoError(t, err)

	_, err = s.Register("Other Alice", "ALICE@example.com", "b")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegisterInvalid(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		Name, Email, Password string
	}{
		{"", "a@example.com", "pw"},
		{"A", "", "pw"},
		{"A", "not an email", "pw"},
		{"A", "Name <a@example.com>", "pw"},
		{"A", "a@example.com", ""},
	}

	for _, test := range tests {
		_, err := s.Register(test.Name, test.Email, test.Password)
		assert.Error(t, err, "%+v", test)
	}

	_, err := os.Stat(s.Path)
	assert.True(t, os.IsNotExist(err), "invalid registrations should not create the file")
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Register("Alice", "alice@example.com", "hunter2")
	require.NoError(t, err)

	u, err := s.Authenticate("Alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)

	_, err = s.Authenticate("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate("nobody@example.com", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFileFormat(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Register("Alice", "alice@example.com", "hunter2")
	require.NoError(t, err)

	b, err := os.ReadFile(s.Path)
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Contains(t, raw, "alice@example.com")
	assert.Equal(t, "Alice", raw["alice@example.com"]["name"])
	assert.Contains(t, raw["alice@example.com"], "password")
}

func TestCorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path, []byte("{not json"), 0600))

	_, err := s.List()
	assert.Error(t, err)

	_, err = s.Register("Alice", "alice@example.com", "pw")
	assert.Error(t, err)
}
