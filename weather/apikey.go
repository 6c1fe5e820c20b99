package weather

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kellegous/labkit/sorting"
	"github.com/pkg/errors"
)

const (
	// APIKeyEnv is the environment variable holding the API key.
	APIKeyEnv = "OPENWEATHER_API_KEY"

	// DotEnvFilename is the name of the files searched for the API key.
	DotEnvFilename = ".env"
)

// ParseDotEnv reads KEY=value lines. Blank lines, comments and lines without
// an = are skipped. Keys and values are trimmed and one layer of surrounding
// quotes is removed from values.
func ParseDotEnv(r io.Reader) (map[string]string, error) {
	env := map[string]string{}

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		env[strings.TrimSpace(k)] = strings.Trim(strings.TrimSpace(v), `"'`)
	}

	return env, s.Err()
}

// ReadDotEnv parses the file at path. A missing file is an empty environment.
func ReadDotEnv(path string) (map[string]string, error) {
	r, err := os.Open(path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	} else if err != nil {
		return nil, err
	}
	defer r.Close()

	return ParseDotEnv(r)
}

// SaveDotEnv sets key to value in the file at path, keeping the other entries.
// Entries are written in key order.
func SaveDotEnv(path, key, value string) error {
	env, err := ReadDotEnv(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	env[key] = value

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}

	var b strings.Builder
	for _, k := range sorting.Quick(keys) {
		fmt.Fprintf(&b, "%s=%s\n", k, env[k])
	}

	return errors.Wrapf(
		os.WriteFile(path, []byte(b.String()), 0600),
		"write %s", path)
}

// Prompter asks the user for an API key.
type Prompter interface {
	Secret(label string) (string, error)
	Confirm(label string) (bool, error)
}

// KeySource describes where LoadAPIKey looks for a key.
type KeySource struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string

	// Dirs are searched, in order, for a .env file defining APIKeyEnv.
	Dirs []string

	// Prompt is asked when no key is found. A nil Prompt makes a missing key
	// an error. A key entered at the prompt may be saved to the .env file in
	// the first of Dirs.
	Prompt Prompter
}

// LoadAPIKey resolves the OpenWeather API key from the environment, then .env
// files, then the prompt.
func LoadAPIKey(src KeySource) (string, error) {
	getenv := src.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if k := strings.TrimSpace(getenv(APIKeyEnv)); k != "" {
		return k, nil
	}

	for _, dir := range src.Dirs {
		env, err := ReadDotEnv(filepath.Join(dir, DotEnvFilename))
		if err != nil {
			return "", errors.Wrapf(err, "read %s", dir)
		}

		if k := strings.TrimSpace(env[APIKeyEnv]); k != "" {
			return k, nil
		}
	}

	if src.Prompt == nil {
		return "", ErrMissingAPIKey
	}

	k, err := src.Prompt.Secret(fmt.Sprintf("%s not found. Enter your OpenWeather API key: ", APIKeyEnv))
	if err != nil {
		return "", err
	}

	k = strings.TrimSpace(k)
	if k == "" {
		return "", ErrMissingAPIKey
	}

	if len(src.Dirs) == 0 {
		return k, nil
	}

	save, err := src.Prompt.Confirm("Save this key to .env for future runs?")
	if err != nil {
		return "", err
	}

	if save {
		if err := SaveDotEnv(filepath.Join(src.Dirs[0], DotEnvFilename), APIKeyEnv, k); err != nil {
			return "", err
		}
	}

	return k, nil
}
