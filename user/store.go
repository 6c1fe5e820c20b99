package user

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/kellegous/labkit/sorting"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Store is a user registry persisted as a JSON object keyed by email. The file
// is read on every call and rewritten on every change, so a Store holds no
// state besides its location.
type Store struct {
	// Path is the location of the registry file.
	Path string

	// Cost is the bcrypt cost used when hashing new passwords.
	Cost int

	lg *zap.Logger
}

// NewStore returns a Store for the file at path. A nil logger disables logging.
func NewStore(path string, lg *zap.Logger) *Store {
	if lg == nil {
		lg = zap.NewNop()
	}

	return &Store{
		Path: path,
		Cost: bcrypt.DefaultCost,
		lg:   lg,
	}
}

func (s *Store) load() (map[string]*Info, error) {
	users := map[string]*Info{}

	b, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return users, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.Path)
	}

	if len(strings.TrimSpace(string(b))) == 0 {
		return users, nil
	}

	if err := json.Unmarshal(b, &users); err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.Path)
	}

	return users, nil
}

func (s *Store) save(users map[string]*Info) error {
	b, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return errors.Wrap(err, "encode users")
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	// write to a sibling and rename so a failed write never truncates the
	// registry.
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", tmp.Name())
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp.Name())
	}

	return errors.Wrapf(os.Rename(tmp.Name(), s.Path), "replace %s", s.Path)
}

// Register adds a new user. Emails are compared without regard to case or
// surrounding space.
func (s *Store) Register(name, email, password string) (*Info, error) {
	users, err := s.load()
	if err != nil {
		return nil, err
	}

	if _, ok := users[normalizeEmail(email)]; ok {
		return nil, errors.Wrapf(ErrEmailExists, "%s", normalizeEmail(email))
	}

	u, err := newInfo(name, email, password, s.Cost)
	if err != nil {
		return nil, err
	}

	users[u.Email] = u
	if err := s.save(users); err != nil {
		return nil, err
	}

	s.lg.Info("registered user",
		zap.String("id", u.ID),
		zap.String("email", u.Email))

	return u, nil
}

// Authenticate returns the user with the given email if password matches.
func (s *Store) Authenticate(email, password string) (*Info, error) {
	users, err := s.load()
	if err != nil {
		return nil, err
	}

	u, ok := users[normalizeEmail(email)]
	if !ok || !u.CheckPassword(password) {
		s.lg.Debug("authentication failed",
			zap.String("email", normalizeEmail(email)))
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// List returns all registered users ordered by name, then email.
func (s *Store) List() ([]*Info, error) {
	users, err := s.load()
	if err != nil {
		return nil, err
	}

	all := make([]*Info, 0, len(users))
	for _, u := range users {
		all = append(all, u)
	}

	return sorting.BubbleFunc(all, func(a, b *Info) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.Email, b.Email)
	}), nil
}
