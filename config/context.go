package config

import (
	"net/http"
	"os"
	"time"

	"github.com/kellegous/labkit/recommend"
	"github.com/kellegous/labkit/sorting"
	"github.com/kellegous/labkit/user"
	"github.com/kellegous/labkit/weather"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Context is the configuration info plus all runtime parameters.
type Context struct {
	// Info is the config Info that was loaded from the config file.
	*Info

	// Logger is shared by everything built from this Context.
	Logger *zap.Logger
}

// BuildContext constructs a new context.
func BuildContext(cfg *Info, lg *zap.Logger) *Context {
	if lg == nil {
		lg = zap.NewNop()
	}

	return &Context{
		Info:   cfg,
		Logger: lg,
	}
}

// Algorithm is the configured sort algorithm.
func (c *Context) Algorithm() sorting.Algorithm {
	alg, err := sorting.ParseAlgorithm(c.Sort.Algorithm)
	if err != nil {
		return sorting.Quicksort
	}
	return alg
}

// UserStore opens the configured user registry.
func (c *Context) UserStore() *user.Store {
	s := user.NewStore(c.Users.File, c.Logger.Named("users"))
	s.Cost = c.Users.Cost
	return s
}

// WeatherClient builds a client for the given key. Empty units fall back to the
// configured ones.
func (c *Context) WeatherClient(key string, units weather.Units) *weather.Client {
	if units == "" {
		units, _ = weather.ParseUnits(c.Weather.Units)
	}

	return &weather.Client{
		Endpoint:   c.Weather.Endpoint,
		APIKey:     key,
		Units:      units,
		HTTPClient: &http.Client{Timeout: time.Duration(c.Weather.Timeout)},
		Logger:     c.Logger.Named("weather"),
	}
}

// Catalog returns the configured product catalog.
func (c *Context) Catalog() ([]recommend.Product, error) {
	if c.Recommend.Catalog == "" {
		return recommend.DefaultCatalog(), nil
	}

	r, err := os.Open(c.Recommend.Catalog)
	if err != nil {
		return nil, errors.Wrap(err, "open catalog")
	}
	defer r.Close()

	return recommend.ReadCatalog(r)
}

// EnvDirs are the directories searched for a .env file with the API key.
func (c *Context) EnvDirs() []string {
	if len(c.Weather.EnvDirs) == 0 {
		return []string{"."}
	}
	return c.Weather.EnvDirs
}
