package user

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailExists is returned when registering an email that is already taken.
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when an email and password do not match
	// a registered user.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Info is a registered user as persisted in the registry file.
type Info struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Created      time.Time `json:"created"`
}

// newInfo validates the fields of a registration and hashes the password with
// the given bcrypt cost.
func newInfo(name, email, password string, cost int) (*Info, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, errors.New("name is required")
	}

	if password == "" {
		return nil, errors.New("password is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, errors.Errorf("invalid email: %q", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	return &Info{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Created:      time.Now().UTC(),
	}, nil
}

// CheckPassword reports whether password matches the stored hash.
func (i *Info) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(
		[]byte(i.PasswordHash),
		[]byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
