package domain

// Config represents the dvmm configuration loaded from dvmm.yaml and DVMM_* variables.
type Config struct {
	Money  MoneyConfig
	Input  InputConfig
	Output OutputConfig
	Paths  PathsConfig
	Log    LogConfig
}

type MoneyConfig struct {
	// Currency is the ISO 4217 code used to format minor-unit prices.
	Currency string
}

type InputConfig struct {
	// Selector is a JSONPath expression applied to every input document.
	Selector string
	// Strict rejects records carrying fields the domain record does not declare.
	Strict bool
}

type OutputConfig struct {
	Format string
}

type PathsConfig struct {
	FixturesDir string
	ReportsDir  string
}

type LogConfig struct {
	Debug bool
	File  string
}

// DefaultConfig provides sane defaults if dvmm.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Money:  MoneyConfig{Currency: "USD"},
		Input:  InputConfig{Selector: "", Strict: false},
		Output: OutputConfig{Format: "json"},
		Paths: PathsConfig{
			FixturesDir: "fixtures",
			ReportsDir:  ".dvmm/reports",
		},
	}
}
