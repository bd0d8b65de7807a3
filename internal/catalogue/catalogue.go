// Package catalogue loads the list of services shown on the services page.
package catalogue

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

//go:embed catalogue.toml
var defaultCatalogue []byte

// Service is one entry of the catalogue.
type Service struct {
	Key            string          `toml:"key" json:"key"`
	Title          string          `toml:"title" json:"title"`
	Description    string          `toml:"description" json:"description"` // markdown
	Link           string          `toml:"link" json:"link"`
	ProcessingTime string          `toml:"processing_time" json:"processing_time"`
	Fee            decimal.Decimal `toml:"fee" json:"fee"`
	MinimumAge     int             `toml:"minimum_age" json:"minimum_age,omitempty"`
	Requirements   []string        `toml:"requirements" json:"requirements"`
	Online         bool            `toml:"online" json:"online"` // has a form on this portal
	Featured       bool            `toml:"featured" json:"featured"`
}

// FeeText formats the fee for display: "Free" for zero, otherwise pounds
// with two decimals.
func (s Service) FeeText() string {
	if s.Fee.IsZero() {
		return "Free"
	}
	return "£" + s.Fee.StringFixed(2)
}

// Catalogue is the ordered list of services.
type Catalogue struct {
	Services []Service `toml:"service"`
}

// Default returns the catalogue compiled into the binary.
func Default() (*Catalogue, error) {
	return Parse(defaultCatalogue)
}

// Load reads a catalogue file. An empty path yields the default catalogue.
func Load(path string) (*Catalogue, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalogue TOML.
func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode catalogue: unknown keys %v", undecoded)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalogue) validate() error {
	if len(c.Services) == 0 {
		return errors.New("catalogue has no services")
	}
	seen := make(map[string]bool, len(c.Services))
	for i, s := range c.Services {
		switch {
		case s.Key == "":
			return fmt.Errorf("service %d: key is required", i)
		case seen[s.Key]:
			return fmt.Errorf("service %s: duplicate key", s.Key)
		case s.Title == "":
			return fmt.Errorf("service %s: title is required", s.Key)
		case s.Fee.IsNegative():
			return fmt.Errorf("service %s: fee must not be negative", s.Key)
		}
		seen[s.Key] = true
	}
	return nil
}

// Get returns the service with the given key.
func (c *Catalogue) Get(key string) (Service, bool) {
	return lo.Find(c.Services, func(s Service) bool { return s.Key == key })
}

// Featured returns the services promoted on the home page.
func (c *Catalogue) Featured() []Service {
	return lo.Filter(c.Services, func(s Service, _ int) bool { return s.Featured })
}
