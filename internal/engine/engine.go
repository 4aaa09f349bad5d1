package engine

import (
	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/rules"
)

// Config holds the dependencies for the rule engine
type Config struct {
	Rules *rules.Tables
}

// Validate checks the configuration
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Rules == nil {
		vb.RequiredField("Rules")
	}

	return vb.Build()
}

// RuleEngine implements Engine over a loaded rule set
type RuleEngine struct {
	rules *rules.Tables
}

var _ Engine = (*RuleEngine)(nil)

// New creates a rule engine
func New(cfg *Config) (*RuleEngine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &RuleEngine{rules: cfg.Rules}, nil
}
