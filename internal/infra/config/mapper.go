package config

import (
	"fmt"
	"strings"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/format"
)

// OutputFormats lists the accepted values of output.format.
var OutputFormats = []string{"json", "yaml", "dump"}

// MapConfig applies the values present in y on top of base.
func MapConfig(path string, y YAMLConfig, base domain.Config) (domain.Config, error) {
	cfg := base
	in := y.DVMM

	if v := strings.TrimSpace(in.Money.Currency); v != "" {
		cfg.Money.Currency = v
	}
	if v := strings.TrimSpace(in.Input.Selector); v != "" {
		cfg.Input.Selector = v
	}
	if in.Input.Strict != nil {
		cfg.Input.Strict = *in.Input.Strict
	}
	if v := strings.TrimSpace(in.Output.Format); v != "" {
		cfg.Output.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(in.Paths.FixturesDir); v != "" {
		cfg.Paths.FixturesDir = v
	}
	if v := strings.TrimSpace(in.Paths.ReportsDir); v != "" {
		cfg.Paths.ReportsDir = v
	}
	if in.Log.Debug != nil {
		cfg.Log.Debug = *in.Log.Debug
	}
	if v := strings.TrimSpace(in.Log.File); v != "" {
		cfg.Log.File = v
	}

	if err := Validate(path, cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate checks the values a config source may get wrong.
func Validate(path string, cfg domain.Config) error {
	if _, err := format.NewMoney(cfg.Money.Currency); err != nil {
		return invalidField(path, "money.currency", err.Error())
	}
	if !isOutputFormat(cfg.Output.Format) {
		return invalidField(path, "output.format", fmt.Sprintf("unsupported format %q (expected %s)", cfg.Output.Format, strings.Join(OutputFormats, "|")))
	}
	return nil
}

func isOutputFormat(f string) bool {
	for _, ok := range OutputFormats {
		if f == ok {
			return true
		}
	}
	return false
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
