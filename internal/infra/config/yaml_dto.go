package config

// YAMLConfig is the on-disk shape of dvmm.yaml.
type YAMLConfig struct {
	DVMM struct {
		Money struct {
			Currency string `yaml:"currency"`
		} `yaml:"money"`

		Input struct {
			Selector string `yaml:"select"`
			Strict   *bool  `yaml:"strict"`
		} `yaml:"input"`

		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`

		Paths struct {
			FixturesDir string `yaml:"fixtures_dir"`
			ReportsDir  string `yaml:"reports_dir"`
		} `yaml:"paths"`

		Log struct {
			Debug *bool  `yaml:"debug"`
			File  string `yaml:"file"`
		} `yaml:"log"`
	} `yaml:"dvmm"`
}
