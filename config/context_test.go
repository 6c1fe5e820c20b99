package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kellegous/labkit/sorting"
	"github.com/kellegous/labkit/weather"
)

func TestContextDefaults(t *testing.T) {
	cfg := Default()
	ctx := BuildContext(&cfg, nil)

	if ctx.Algorithm() != sorting.Quicksort {
		t.Fatalf("expected quick, got %s", ctx.Algorithm())
	}

	if dirs := ctx.EnvDirs(); len(dirs) != 1 || dirs[0] != "." {
		t.Fatalf("expected [.], got %v", dirs)
	}

	c := ctx.WeatherClient("key", "")
	if c.Units != weather.Metric {
		t.Fatalf("expected metric, got %s", c.Units)
	}
	if c.HTTPClient.Timeout != weather.DefaultTimeout {
		t.Fatalf("expected %s timeout, got %s", weather.DefaultTimeout, c.HTTPClient.Timeout)
	}

	c = ctx.WeatherClient("key", weather.Imperial)
	if c.Units != weather.Imperial {
		t.Fatalf("expected imperial, got %s", c.Units)
	}

	products, err := ctx.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 6 {
		t.Fatalf("expected the 6 product sample catalog, got %d", len(products))
	}
}

func TestContextFromFile(t *testing.T) {
	dir := t.TempDir()
	catalog := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(catalog, []byte(`[{"id": 1, "name": "A", "category": "x", "brand": "y"}]`), 0600); err != nil {
		t.Fatal(err)
	}

	conf := filepath.Join(dir, "labkit.json")
	if err := os.WriteFile(conf, []byte(`{
		"sort": {"algorithm": "bubble"},
		"weather": {"timeout": "2s"},
		"recommend": {"catalog": "catalog.json"}
	}`), 0600); err != nil {
		t.Fatal(err)
	}

	var cfg Info
	if err := cfg.ReadFile(conf); err != nil {
		t.Fatal(err)
	}

	ctx := BuildContext(&cfg, nil)
	if ctx.Algorithm() != sorting.BubbleSort {
		t.Fatalf("expected bubble, got %s", ctx.Algorithm())
	}

	if got := ctx.WeatherClient("key", "").HTTPClient.Timeout; got != 2*time.Second {
		t.Fatalf("expected 2s timeout, got %s", got)
	}

	if got := ctx.UserStore().Path; got != filepath.Join(dir, "users.json") {
		t.Fatalf("expected users file next to the config, got %s", got)
	}

	products, err := ctx.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 || products[0].Name != "A" {
		t.Fatalf("unexpected catalog %+v", products)
	}
}
