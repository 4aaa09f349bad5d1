// Package srd resolves spells from the D&D 5e SRD API
package srd

//go:generate mockgen -destination=mock/mock_catalog.go -package=srdmock github.com/KirkDiggler/rpg-rules/internal/clients/srd Catalog

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	internalDnd5e "github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
)

const (
	// DefaultBaseURL is the public SRD API
	DefaultBaseURL     = "https://www.dnd5eapi.co/api/2014/"
	defaultHTTPTimeout = 30 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Catalog looks up spells by SRD key
type Catalog interface {
	// GetSpell resolves a key such as "magic-missile" or a display name
	// such as "Magic Missile"
	// Returns errors.InvalidArgument for a blank key
	// Returns errors.NotFound when the API has no such spell
	GetSpell(ctx context.Context, key string) (*internalDnd5e.Spell, error)
}

// spellSource is the slice of the dnd5e-api client the catalog needs
type spellSource interface {
	GetSpell(key string) (*entities.Spell, error)
}

// Config contains configuration for the SRD catalog
type Config struct {
	// BaseURL defaults to DefaultBaseURL
	BaseURL string
	// HTTPTimeout defaults to 30 seconds
	HTTPTimeout time.Duration
	// CacheTTL defaults to 24 hours
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.Field("CacheTTL", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return nil
}

// APICatalog reads spells through the cached dnd5e-api client
type APICatalog struct {
	source spellSource
}

var _ Catalog = (*APICatalog)(nil)

// New creates a catalog backed by the SRD API
func New(cfg *Config) (*APICatalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &APICatalog{source: dnd5e.NewCachedClient(base, cfg.CacheTTL)}, nil
}

// GetSpell resolves one spell
func (c *APICatalog) GetSpell(_ context.Context, key string) (*internalDnd5e.Spell, error) {
	slug := Slug(key)
	if slug == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	spell, err := c.source.GetSpell(slug)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get spell "+slug)
	}
	if spell == nil || spell.Name == "" {
		return nil, errors.NotFoundf("spell %s not found", slug)
	}

	return toSpell(spell), nil
}

func toSpell(spell *entities.Spell) *internalDnd5e.Spell {
	out := &internalDnd5e.Spell{
		Name:  spell.Name,
		Level: spell.SpellLevel,
	}
	if spell.SpellSchool != nil {
		out.School = strings.ToLower(spell.SpellSchool.Name)
	}
	return out
}

// Slug turns a display name into an SRD key, e.g. "Magic Missile" becomes
// "magic-missile"
func Slug(key string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(key), "-")
	return strings.Trim(slug, "-")
}
