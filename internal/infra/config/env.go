package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/a2-coder/dvmm/internal/domain"
)

// envConfig lists the DVMM_* overrides. Unset variables leave the field untouched.
type envConfig struct {
	Currency    string `env:"DVMM_CURRENCY"`
	Selector    string `env:"DVMM_SELECT"`
	Strict      bool   `env:"DVMM_STRICT"`
	Format      string `env:"DVMM_FORMAT"`
	FixturesDir string `env:"DVMM_FIXTURES_DIR"`
	ReportsDir  string `env:"DVMM_REPORTS_DIR"`
	Debug       bool   `env:"DVMM_DEBUG"`
	LogFile     string `env:"DVMM_LOG_FILE"`
}

// ApplyEnv overlays DVMM_* variables on cfg. A nil environ reads the process environment.
func ApplyEnv(cfg domain.Config, environ map[string]string) (domain.Config, error) {
	e := envConfig{
		Currency:    cfg.Money.Currency,
		Selector:    cfg.Input.Selector,
		Strict:      cfg.Input.Strict,
		Format:      cfg.Output.Format,
		FixturesDir: cfg.Paths.FixturesDir,
		ReportsDir:  cfg.Paths.ReportsDir,
		Debug:       cfg.Log.Debug,
		LogFile:     cfg.Log.File,
	}

	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.env",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse env: %w", err),
		}
	}

	out := cfg
	out.Money.Currency = strings.TrimSpace(e.Currency)
	out.Input.Selector = strings.TrimSpace(e.Selector)
	out.Input.Strict = e.Strict
	out.Output.Format = strings.ToLower(strings.TrimSpace(e.Format))
	out.Paths.FixturesDir = e.FixturesDir
	out.Paths.ReportsDir = e.ReportsDir
	out.Log.Debug = e.Debug
	out.Log.File = e.LogFile

	if err := Validate("env", out); err != nil {
		return cfg, err
	}
	return out, nil
}
