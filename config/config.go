package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kellegous/labkit/sorting"
	"github.com/kellegous/labkit/weather"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration written as a string such as "8s" in config files.
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// SortInfo configures the sort command.
type SortInfo struct {
	// Algorithm is "quick" or "bubble".
	Algorithm string `json:"algorithm" yaml:"algorithm"`
}

// WeatherInfo configures the OpenWeather client.
type WeatherInfo struct {
	Endpoint string   `json:"endpoint" yaml:"endpoint"`
	Units    string   `json:"units" yaml:"units"`
	Timeout  Duration `json:"timeout" yaml:"timeout"`

	// Directories searched for a .env file holding the API key. Defaults to the
	// directory of the config file and the working directory.
	EnvDirs []string `json:"env-dirs" yaml:"env-dirs"`
}

// UsersInfo configures the user registry.
type UsersInfo struct {
	// The JSON file holding registered users.
	File string `json:"file" yaml:"file"`

	// The bcrypt cost for new password hashes.
	Cost int `json:"cost" yaml:"cost"`
}

// RecommendInfo configures the recommender.
type RecommendInfo struct {
	// An optional JSON file with a product catalog, the built-in sample catalog
	// is used otherwise.
	Catalog string `json:"catalog" yaml:"catalog"`

	TopN int `json:"top-n" yaml:"top-n"`
}

// Info is a configuration object that is loaded directly from the config file.
type Info struct {
	Sort      SortInfo      `json:"sort" yaml:"sort"`
	Weather   WeatherInfo   `json:"weather" yaml:"weather"`
	Users     UsersInfo     `json:"users" yaml:"users"`
	Recommend RecommendInfo `json:"recommend" yaml:"recommend"`
}

// Default returns the configuration used when no config file exists.
func Default() Info {
	return Info{
		Sort: SortInfo{
			Algorithm: sorting.Quicksort.String(),
		},
		Weather: WeatherInfo{
			Endpoint: weather.DefaultEndpoint,
			Units:    string(weather.Metric),
			Timeout:  Duration(weather.DefaultTimeout),
		},
		Users: UsersInfo{
			File: "users.json",
			Cost: bcrypt.DefaultCost,
		},
		Recommend: RecommendInfo{
			TopN: 3,
		},
	}
}

// ReadFile loads the configuration info from the given file on top of the
// defaults. Files ending in .yaml or .yml are read as YAML, anything else as
// JSON. Relative paths in the file are resolved against its directory.
func (i *Info) ReadFile(filename string) error {
	*i = Default()

	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, i)
	default:
		err = json.Unmarshal(b, i)
	}
	if err != nil {
		return errors.Wrapf(err, "parse %s", filename)
	}

	dir := filepath.Dir(filename)
	i.Users.File = resolve(dir, i.Users.File)
	i.Recommend.Catalog = resolve(dir, i.Recommend.Catalog)
	if len(i.Weather.EnvDirs) == 0 {
		i.Weather.EnvDirs = []string{dir, "."}
	} else {
		for j, d := range i.Weather.EnvDirs {
			i.Weather.EnvDirs[j] = resolve(dir, d)
		}
	}

	return nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Validate reports every problem with the configuration.
func (i *Info) Validate() error {
	var err error

	if _, e := sorting.ParseAlgorithm(i.Sort.Algorithm); e != nil {
		err = multierr.Append(err, e)
	}

	if _, e := weather.ParseUnits(i.Weather.Units); e != nil {
		err = multierr.Append(err, e)
	}

	if i.Weather.Timeout <= 0 {
		err = multierr.Append(err,
			fmt.Errorf("weather timeout must be positive, got %s", time.Duration(i.Weather.Timeout)))
	}

	if i.Users.File == "" {
		err = multierr.Append(err, errors.New("users file is required"))
	}

	if i.Users.Cost < bcrypt.MinCost || i.Users.Cost > bcrypt.MaxCost {
		err = multierr.Append(err,
			fmt.Errorf("users cost must be between %d and %d, got %d",
				bcrypt.MinCost, bcrypt.MaxCost, i.Users.Cost))
	}

	if i.Recommend.TopN < 1 {
		err = multierr.Append(err,
			fmt.Errorf("recommend top-n must be at least 1, got %d", i.Recommend.TopN))
	}

	return err
}
