// Package config loads ls-rigel settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-rigel/internal/catalog"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/logging"
)

// Observer is the observer's location in degrees.
type Observer struct {
	Lon float64 `yaml:"lon"`
	Lat float64 `yaml:"lat"`
}

// View describes where the projection is centred and how far the
// nearest-object search reaches.
type View struct {
	Az     float64 `yaml:"az"`     // projection centre azimuth, deg
	Alt    float64 `yaml:"alt"`    // projection centre altitude, deg
	FOV    float64 `yaml:"fov"`    // field of view, deg
	Radius float64 `yaml:"radius"` // search radius on the projection plane
}

// Config holds all ls-rigel settings.
type Config struct {
	Observer Observer        `yaml:"observer"`
	View     View            `yaml:"view"`
	Catalog  catalog.Sources `yaml:"catalog"`
	LogLevel string          `yaml:"log_level"`
	CacheTTL time.Duration   `yaml:"cache_ttl"`
}

// Default returns the built-in configuration: the EPFL campus in Lausanne
// looking south, with the embedded catalog.
func Default() Config {
	return Config{
		Observer: Observer{Lon: 6.57, Lat: 46.52},
		View: View{
			Az:     180,
			Alt:    22,
			FOV:    100,
			Radius: 0.1,
		},
		LogLevel: "info",
		CacheTTL: time.Minute,
	}
}

// Load reads path over the defaults and validates the result. Keys absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	if !coords.IsValidLonDeg(c.Observer.Lon) {
		errs = append(errs, fmt.Errorf("observer longitude %v outside (-180, 180]", c.Observer.Lon))
	}
	if !coords.IsValidLatDeg(c.Observer.Lat) {
		errs = append(errs, fmt.Errorf("observer latitude %v outside [-90, 90]", c.Observer.Lat))
	}
	if !(c.View.Az >= 0 && c.View.Az < 360) {
		errs = append(errs, fmt.Errorf("view azimuth %v outside [0, 360)", c.View.Az))
	}
	if !(c.View.Alt >= -90 && c.View.Alt <= 90) {
		errs = append(errs, fmt.Errorf("view altitude %v outside [-90, 90]", c.View.Alt))
	}
	if !(c.View.FOV > 0 && c.View.FOV <= 360) {
		errs = append(errs, fmt.Errorf("field of view %v outside (0, 360]", c.View.FOV))
	}
	if !(c.View.Radius >= 0) {
		errs = append(errs, fmt.Errorf("search radius %v is negative", c.View.Radius))
	}
	if _, ok := logging.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("cache ttl %v is negative", c.CacheTTL))
	}
	return errors.Join(errs...)
}

// ObserverLocation returns the configured location.
func (c Config) ObserverLocation() (coords.Geographic, error) {
	return coords.NewGeographicDeg(c.Observer.Lon, c.Observer.Lat)
}

// Center returns the configured projection centre.
func (c Config) Center() (coords.Horizontal, error) {
	return coords.NewHorizontalDeg(c.View.Az, c.View.Alt)
}
