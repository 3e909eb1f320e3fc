package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/slotgrid/internal/inventory"
)

// EnvPath names the environment variable consulted for the config file path.
const EnvPath = "SLOTGRID_CONFIG"

// Config holds all slotgrid configuration
type Config struct {
	Inventory InventoryConfig `yaml:"inventory"`
	Log       LogConfig       `yaml:"log"`
	Items     []ItemConfig    `yaml:"items"`
}

// InventoryConfig holds grid dimensions and stack limits
type InventoryConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	SlotCapacity int `yaml:"slot_capacity"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder, caller info
}

// ItemConfig declares an item type beyond the built-in ones
type ItemConfig struct {
	Name        string `yaml:"name"`
	ID          int    `yaml:"id"` // optional, assigned when zero
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration from YAML bytes and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if _, err := cfg.Inventory.ToInventory(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve loads the file at path, or at $SLOTGRID_CONFIG when path is
// empty. With neither set it returns the defaults.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	// Set defaults if not provided
	if c.Inventory.Width == 0 {
		c.Inventory.Width = 3
	}
	if c.Inventory.Height == 0 {
		c.Inventory.Height = 4
	}
	if c.Inventory.SlotCapacity == 0 {
		c.Inventory.SlotCapacity = 99
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ToInventory converts the section into a validated inventory.Config.
func (ic InventoryConfig) ToInventory() (inventory.Config, error) {
	cfg := inventory.Config{
		Width:        ic.Width,
		Height:       ic.Height,
		SlotCapacity: ic.SlotCapacity,
	}
	if err := cfg.Validate(); err != nil {
		return inventory.Config{}, err
	}
	return cfg, nil
}

// Registry builds the default item registry plus every declared item.
func (c *Config) Registry() (*inventory.Registry, error) {
	reg := inventory.DefaultRegistry()
	for _, it := range c.Items {
		err := reg.RegisterDetails(inventory.ItemDetails{
			Type:        inventory.ItemType(it.ID),
			Name:        it.Name,
			Category:    it.Category,
			Description: it.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", it.Name, err)
		}
	}
	return reg, nil
}
