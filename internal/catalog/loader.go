// Package catalog loads the option and enchantment tables the forge rolls
// from.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SwordForge_Go/internal/domain"
	"github.com/osse101/SwordForge_Go/internal/enchantment"
	"github.com/osse101/SwordForge_Go/internal/upgrade"
	"github.com/osse101/SwordForge_Go/internal/utils"
	"github.com/osse101/SwordForge_Go/internal/validation"
)

// ErrInvalidConfig marks a forge config that cannot be turned into tables.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the JSON configuration for the forge
type Config struct {
	Version      string             `json:"version" validate:"required"`
	Categories   []CategoryDef      `json:"categories" validate:"required,min=1,dive"`
	Enchantments EnchantmentsConfig `json:"enchantments"`
}

// CategoryDef is one attribute category with its upgrade track
type CategoryDef struct {
	Name    string      `json:"name" validate:"required"`
	Upgrade UpgradeDef  `json:"upgrade"`
	Options []OptionDef `json:"options" validate:"required,min=1,dive"`
}

// UpgradeDef describes the cost curve of a category
type UpgradeDef struct {
	Level          int     `json:"level,omitempty" validate:"gte=0,ltefield=MaxLevel"`
	MaxLevel       int     `json:"max_level" validate:"gte=0"`
	BaseCost       float64 `json:"base_cost" validate:"gt=0"`
	CostMultiplier float64 `json:"cost_multiplier" validate:"gt=1"`
}

// OptionDef is one option of a category
type OptionDef struct {
	Name       string  `json:"name" validate:"required"`
	Chance     Chance  `json:"chance" validate:"gte=1"`
	Multiplier float64 `json:"multiplier" validate:"gte=0"`
	Color      string  `json:"color,omitempty"`
}

// EnchantmentsConfig is the enchantment table
type EnchantmentsConfig struct {
	Types        []string   `json:"types" validate:"required,min=1,unique,dive,required"`
	CountWeights []float64  `json:"count_weights" validate:"required,min=1,max=3,dive,gte=0"`
	Levels       []LevelDef `json:"levels" validate:"required,min=1,dive"`
}

// LevelDef is one enchantment level row
type LevelDef struct {
	Level            int     `json:"level" validate:"gte=1,lte=36"`
	Chance           Chance  `json:"chance" validate:"gte=1"`
	ValueMultiplier  float64 `json:"value_multiplier" validate:"gte=0"`
	DamageMultiplier float64 `json:"damage_multiplier,omitempty" validate:"gte=0"`
	HealthMultiplier float64 `json:"health_multiplier,omitempty" validate:"gte=0"`
}

// Catalog is the validated, immutable result of loading a forge config.
type Catalog struct {
	Tables       []*domain.OptionTable
	Upgrades     []upgrade.CategoryConfig
	Enchantments *enchantment.Table
	Checksum     string
}

// TableMap indexes the tables by category.
func (c *Catalog) TableMap() map[string]*domain.OptionTable {
	out := make(map[string]*domain.OptionTable, len(c.Tables))
	for _, t := range c.Tables {
		out[t.Category()] = t
	}
	return out
}

// Loader handles loading and validating forge configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) (*Catalog, error)
	LoadCatalog(path string) (*Catalog, error)
}

type forgeLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
	structValidator *validator.Validate
}

// NewLoader creates a Loader that validates files against schemaPath.
// An empty schemaPath uses ForgeSchemaPath.
func NewLoader(schemaPath string) Loader {
	if schemaPath == "" {
		schemaPath = ForgeSchemaPath
	}
	return &forgeLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      schemaPath,
		structValidator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads, schema-checks and decodes a forge config file
func (l *forgeLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	return l.parse(data, path)
}

func (l *forgeLoader) parse(data []byte, source string) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", source, err)
	}

	var config Config
	if err := utils.DecodeJSONStrict(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks the decoded config beyond what the schema covers
func (l *forgeLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Categories) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoCategoriesDefined)
	}
	if err := l.structValidator.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	seen := make(map[string]bool, len(config.Categories))
	for _, c := range config.Categories {
		if seen[c.Name] {
			return fmt.Errorf("%w: category %q defined twice", ErrInvalidConfig, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// Build turns a validated config into option tables, upgrade tracks and
// the enchantment table
func (l *forgeLoader) Build(config *Config) (*Catalog, error) {
	if err := l.Validate(config); err != nil {
		return nil, err
	}

	cat := &Catalog{}
	for _, def := range config.Categories {
		opts := make([]domain.Option, len(def.Options))
		for i, o := range def.Options {
			color, err := domain.ParseColor(o.Color)
			if err != nil {
				return nil, fmt.Errorf("category %s option %s: %w", def.Name, o.Name, err)
			}
			opts[i] = domain.Option{
				Name:       o.Name,
				BaseOdds:   float64(o.Chance),
				Multiplier: o.Multiplier,
				Color:      color,
			}
		}

		table, err := domain.NewOptionTable(def.Name, opts)
		if err != nil {
			return nil, err
		}
		cat.Tables = append(cat.Tables, table)
		cat.Upgrades = append(cat.Upgrades, upgrade.CategoryConfig{
			Name:           def.Name,
			Level:          def.Upgrade.Level,
			MaxLevel:       def.Upgrade.MaxLevel,
			BaseCost:       def.Upgrade.BaseCost,
			CostMultiplier: def.Upgrade.CostMultiplier,
		})
	}

	levels := make([]domain.EnchantmentLevel, len(config.Enchantments.Levels))
	for i, lvl := range config.Enchantments.Levels {
		levels[i] = domain.EnchantmentLevel{
			Level:            lvl.Level,
			Weight:           1 / float64(lvl.Chance),
			ValueMultiplier:  orNeutral(lvl.ValueMultiplier),
			DamageMultiplier: orNeutral(lvl.DamageMultiplier),
			HealthMultiplier: orNeutral(lvl.HealthMultiplier),
		}
	}
	ench, err := enchantment.NewTable(config.Enchantments.Types, config.Enchantments.CountWeights, levels)
	if err != nil {
		return nil, err
	}
	cat.Enchantments = ench

	return cat, nil
}

// LoadCatalog runs Load, Validate and Build and records the file checksum
func (l *forgeLoader) LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	config, err := l.parse(data, path)
	if err != nil {
		return nil, err
	}
	cat, err := l.Build(config)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	cat.Checksum = hex.EncodeToString(sum[:])
	return cat, nil
}

// orNeutral maps an omitted multiplier to 1.
func orNeutral(m float64) float64 {
	if m == 0 {
		return 1
	}
	return m
}
