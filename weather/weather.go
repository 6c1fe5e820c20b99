// Package weather fetches current conditions for a city from the OpenWeather
// API.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultEndpoint is the OpenWeather current weather endpoint.
	DefaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"

	// DefaultTimeout bounds a request when the Client has no http.Client.
	DefaultTimeout = 8 * time.Second

	maxDetail = 4096
)

var (
	// ErrUnauthorized is returned when OpenWeather rejects the API key.
	ErrUnauthorized = errors.New("unauthorized, check your API key")

	// ErrTimeout is returned when the request does not complete in time.
	ErrTimeout = errors.New("request timed out")

	// ErrMissingAPIKey is returned when no API key is available.
	ErrMissingAPIKey = errors.New(APIKeyEnv + " missing")
)

// CityNotFoundError is returned when OpenWeather does not know the city.
type CityNotFoundError struct {
	City string
}

func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("city %q not found", e.City)
}

// StatusError is returned for any other unsuccessful response.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("OpenWeather error %d", e.Code)
}

// Units selects the unit system of a Report.
type Units string

const (
	Standard Units = "standard"
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// ParseUnits accepts standard, metric or imperial. An empty string is metric.
func ParseUnits(s string) (Units, error) {
	switch u := Units(strings.ToLower(strings.TrimSpace(s))); u {
	case Standard, Metric, Imperial:
		return u, nil
	case "":
		return Metric, nil
	}
	return "", errors.Errorf("invalid units %q, expected standard, metric or imperial", s)
}

// Report is the current weather for a city.
type Report struct {
	City        string  `json:"city"`
	Country     string  `json:"country,omitempty"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"weather"`
	Units       Units   `json:"units"`
}

// Location renders the city, followed by the country when it is known.
func (r *Report) Location() string {
	if r.Country == "" {
		return r.City
	}
	return fmt.Sprintf("%s, %s", r.City, r.Country)
}

// Client queries OpenWeather.
type Client struct {
	// Endpoint defaults to DefaultEndpoint.
	Endpoint string

	APIKey string

	// Units defaults to Metric.
	Units Units

	// HTTPClient defaults to a client with DefaultTimeout.
	HTTPClient *http.Client

	Logger *zap.Logger
}

type payload struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (c *Client) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return DefaultEndpoint
}

func (c *Client) units() Units {
	if c.Units != "" {
		return c.Units
	}
	return Metric
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: DefaultTimeout}
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func (c *Client) requestURL(city string) (string, error) {
	u, err := url.Parse(c.endpoint())
	if err != nil {
		return "", errors.Wrap(err, "invalid endpoint")
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.APIKey)
	q.Set("units", string(c.units()))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch returns the current weather for city.
func (c *Client) Fetch(ctx context.Context, city string) (*Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, errors.New("city is required")
	}

	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	u, err := c.requestURL(city)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	lg := c.logger().With(zap.String("city", city))
	start := time.Now()

	res, err := c.httpClient().Do(req)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return nil, errors.Wrap(ErrTimeout, err.Error())
		}
		return nil, errors.Wrap(err, "network error")
	}
	defer res.Body.Close()

	lg.Debug("weather response",
		zap.Int("status", res.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, &CityNotFoundError{City: city}
	default:
		b, _ := io.ReadAll(io.LimitReader(res.Body, maxDetail))
		return nil, &StatusError{
			Code:   res.StatusCode,
			Detail: string(b),
		}
	}

	var p payload
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	r := &Report{
		City:        p.Name,
		Country:     p.Sys.Country,
		Temperature: p.Main.Temp,
		FeelsLike:   p.Main.FeelsLike,
		Humidity:    p.Main.Humidity,
		Pressure:    p.Main.Pressure,
		WindSpeed:   p.Wind.Speed,
		Units:       c.units(),
	}

	if r.City == "" {
		r.City = city
	}

	if len(p.Weather) > 0 {
		r.Description = p.Weather[0].Description
	}

	return r, nil
}
